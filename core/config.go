package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config lendpool config
type Config struct {
	App    App         `json:"app"`
	DB     db.Config   `json:"db"`
	Oracle Oracle      `json:"oracle"`
	Pool   PoolGenesis `json:"pool"`
	Relay  Relay       `json:"relay"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// Oracle price oracle config
type Oracle struct {
	EndPoint string        `json:"end_point"`
	Symbol   string        `json:"symbol"`
	MaxAge   time.Duration `json:"max_age"`
	Interval time.Duration `json:"interval"`
}

// PoolGenesis values written the first time the pool row is created;
// afterwards only the owner-gated setters mutate them.
type PoolGenesis struct {
	Owner                string `json:"owner"`
	AuthorizedRepayer    string `json:"authorized_repayer"`
	BorrowInterestRate   int64  `json:"borrow_interest_rate"`
	LiquidationThreshold int64  `json:"liquidation_threshold"`
	LiquidationBonus     int64  `json:"liquidation_bonus"`
}

// Relay cross-chain relay config
type Relay struct {
	Repayer string `json:"repayer"`
}
