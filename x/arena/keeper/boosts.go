package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

func (k Keeper) GetBoostDefinition(ctx context.Context, id uint32) (types.BoostDefinition, error) {
	def, err := k.BoostDefinitions.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return def, errorsmod.Wrapf(types.ErrBoostNotFound, "boost %d", id)
	}
	return def, err
}

// ActivateBoost spends boost points of user on catalog entry boostID and
// appends a snapshot of it to the user's active boosts.
func (k Keeper) ActivateBoost(ctx context.Context, user sdk.AccAddress, boostID uint32) (types.ActiveBoost, error) {
	def, err := k.GetBoostDefinition(ctx, boostID)
	if err != nil {
		return types.ActiveBoost{}, err
	}
	_, now := k.now(ctx)
	acct, err := k.loadUserForWrite(ctx, user, now)
	if err != nil {
		return types.ActiveBoost{}, err
	}
	ab, err := acct.ActivateBoost(def, now)
	if err != nil {
		return types.ActiveBoost{}, err
	}
	if err := k.Users.Set(ctx, user, acct); err != nil {
		return types.ActiveBoost{}, err
	}

	k.logger.Debug("boost activated", "user", user.String(), "boost", boostID, "kind", def.Kind.String())

	return ab, k.emit(ctx, types.EventTypeBoostActivated,
		attr(types.AttributeKeyActor, user.String()),
		attr(types.AttributeKeyBoostID, boostID),
		attr(types.AttributeKeyExpiresAt, ab.ExpiresAt),
	)
}

// UpsertBoostDefinition creates or replaces a catalog entry. Boosts already
// activated from it keep their snapshot.
func (k Keeper) UpsertBoostDefinition(ctx context.Context, admin string, def types.BoostDefinition) error {
	if err := k.checkAdmin(ctx, admin); err != nil {
		return err
	}
	if err := def.Validate(); err != nil {
		return err
	}
	if err := k.BoostDefinitions.Set(ctx, def.ID, def); err != nil {
		return err
	}
	k.logger.Info("boost definition upserted", "boost", def.ID, "kind", def.Kind.String(), "value_bps", def.ValueBps)
	return k.emit(ctx, types.EventTypeBoostUpserted,
		attr(types.AttributeKeyActor, admin),
		attr(types.AttributeKeyBoostID, def.ID),
	)
}
