package types

import "cosmossdk.io/collections"

const (
	ModuleName = "arena"
	StoreKey   = ModuleName

	// TreasuryAccount holds XNT paid for rigs and pays staking rewards.
	TreasuryAccount = "arena_treasury"
	// StakingVault holds staked GAME principal.
	StakingVault = "arena_staking"
)

var (
	ParamsKey              = collections.NewPrefix(0)
	EmissionKey            = collections.NewPrefix(1)
	TreasuryKey            = collections.NewPrefix(2)
	PoolKey                = collections.NewPrefix(3)
	UserKeyPrefix          = collections.NewPrefix(4)
	PositionKeyPrefix      = collections.NewPrefix(5)
	PositionOwnerKeyPrefix = collections.NewPrefix(6)
	BoostDefKeyPrefix      = collections.NewPrefix(7)
)

const (
	EventTypeMine              = "mine"
	EventTypeStake             = "stake"
	EventTypeClaim             = "claim"
	EventTypeUnstake           = "unstake"
	EventTypeBoostActivated    = "boost_activated"
	EventTypeBoostUpserted     = "boost_upserted"
	EventTypeRankingApplied    = "ranking_applied"
	EventTypeDailyPointsReset  = "daily_points_reset"
	EventTypeHalvingUpdated    = "halving_updated"
	EventTypeTreasuryInit      = "treasury_initialized"
	EventTypeStakingPoolInit   = "staking_pool_initialized"
	EventTypeParamsUpdated     = "params_updated"
	EventTypeInflowAbsorbed    = "inflow_absorbed"
	AttributeKeyActor          = "actor"
	AttributeKeyRig            = "rig_id"
	AttributeKeyDeposit        = "deposit"
	AttributeKeyReward         = "reward"
	AttributeKeyFreeRig        = "used_free_rig"
	AttributeKeyPositionID     = "position_id"
	AttributeKeyPosition       = "position"
	AttributeKeyAmount         = "amount"
	AttributeKeyLockDays       = "lock_days"
	AttributeKeyEffectiveStake = "effective_stake"
	AttributeKeyClaimed        = "rewards_claimed"
	AttributeKeyBoostID        = "boost_id"
	AttributeKeyExpiresAt      = "expires_at"
	AttributeKeyPoints         = "points"
	AttributeKeyDayID          = "day_id"
	AttributeKeyHalvingLevel   = "halving_level"
	AttributeKeyUser           = "user"
)
