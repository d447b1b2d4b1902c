package simulation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Wielop1/x1-mining-arena/x/arena/types"
)

// Step actions.
const (
	ActionMine     = "mine"
	ActionStake    = "stake"
	ActionClaim    = "claim"
	ActionUnstake  = "unstake"
	ActionBoost    = "boost"
	ActionRank     = "rank"
	ActionResetDay = "reset_day"
	ActionHalving  = "halving"
	ActionAdvance  = "advance"
)

const DefaultBlockSeconds int64 = 6

// Scenario is a scripted arena session.
type Scenario struct {
	StakingShareBps uint32    `yaml:"staking_share_bps"`
	HalvingInterval uint64    `yaml:"halving_interval"`
	BlockSeconds    int64     `yaml:"block_seconds"`
	Boosts          []Boost   `yaml:"boosts"`
	Accounts        []Account `yaml:"accounts"`
	Steps           []Step    `yaml:"steps"`
}

type Boost struct {
	ID              uint32 `yaml:"id"`
	Kind            string `yaml:"kind"`
	CostPoints      uint64 `yaml:"cost_points"`
	ValueBps        uint16 `yaml:"value_bps"`
	DurationSeconds int64  `yaml:"duration_seconds"`
	Rig             *uint8 `yaml:"rig"`
}

// Account is a named player with its starting balances in minor units.
type Account struct {
	Name string `yaml:"name"`
	XNT  uint64 `yaml:"xnt"`
	Game uint64 `yaml:"game"`
}

// Step is one action. Fields that do not apply to the action are ignored.
type Step struct {
	Action   string `yaml:"action"`
	Actor    string `yaml:"actor"`
	Rig      uint8  `yaml:"rig"`
	Amount   uint64 `yaml:"amount"`
	LockDays uint16 `yaml:"lock_days"`
	Position uint32 `yaml:"position"`
	Boost    uint32 `yaml:"boost"`
	Points   uint64 `yaml:"points"`
	Day      int64  `yaml:"day"`
	Seconds  int64  `yaml:"seconds"`
	Repeat   int    `yaml:"repeat"`
	// ExpectError is a substring the step's error must contain. A step
	// with ExpectError set fails when it succeeds.
	ExpectError string `yaml:"expect_error"`
}

func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) ApplyDefaults() {
	if s.StakingShareBps == 0 {
		s.StakingShareBps = types.DefaultStakingShareBps
	}
	if s.HalvingInterval == 0 {
		s.HalvingInterval = types.DefaultHalvingInterval
	}
	if s.BlockSeconds == 0 {
		s.BlockSeconds = DefaultBlockSeconds
	}
	for i := range s.Steps {
		if s.Steps[i].Repeat == 0 {
			s.Steps[i].Repeat = 1
		}
	}
}

func (s *Scenario) Validate() error {
	if s.BlockSeconds < 0 {
		return fmt.Errorf("block_seconds must not be negative")
	}
	names := make(map[string]struct{}, len(s.Accounts))
	for _, a := range s.Accounts {
		if a.Name == "" {
			return fmt.Errorf("account without a name")
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("duplicate account %q", a.Name)
		}
		names[a.Name] = struct{}{}
	}
	for _, b := range s.Boosts {
		if _, err := b.Definition(); err != nil {
			return fmt.Errorf("boost %d: %w", b.ID, err)
		}
	}
	for i, st := range s.Steps {
		switch st.Action {
		case ActionHalving, ActionAdvance:
		case ActionMine, ActionStake, ActionClaim, ActionUnstake, ActionBoost, ActionRank, ActionResetDay:
			if _, ok := names[st.Actor]; !ok {
				return fmt.Errorf("step %d: unknown actor %q", i+1, st.Actor)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, st.Action)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("step %d: negative repeat", i+1)
		}
	}
	return nil
}

// Definition converts b into a catalog entry.
func (b Boost) Definition() (types.BoostDefinition, error) {
	kind, err := types.ParseBoostKind(b.Kind)
	if err != nil {
		return types.BoostDefinition{}, err
	}
	def := types.BoostDefinition{
		ID:              b.ID,
		Kind:            kind,
		CostPoints:      b.CostPoints,
		ValueBps:        b.ValueBps,
		DurationSeconds: b.DurationSeconds,
		RigID:           b.Rig,
	}
	return def, def.Validate()
}
