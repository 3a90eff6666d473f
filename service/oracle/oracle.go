package oracle

import (
	"context"
	"fmt"
	"time"

	"lendpool/core"
	"lendpool/pkg/resthttp"

	"github.com/asaskevich/govalidator"
	"github.com/bluele/gcache"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const latestKey = "oracle.latest"

// Config oracle service config
type Config struct {
	EndPoint string        `json:"end_point" valid:"url,required"`
	Symbol   string        `json:"symbol" valid:"required"`
	MaxAge   time.Duration `json:"max_age"`
}

type oracleService struct {
	cfg    Config
	prices core.IPriceStore
	cache  gcache.Cache
	sf     *singleflight.Group
}

// New new price oracle service
func New(cfg Config, prices core.IPriceStore) core.IPriceOracleService {
	if !govalidator.IsRequestURL(cfg.EndPoint) {
		panic(fmt.Errorf("oracle: invalid end point %q", cfg.EndPoint))
	}

	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 5 * time.Minute
	}

	return &oracleService{
		cfg:    cfg,
		prices: prices,
		cache:  gcache.New(16).LRU().Build(),
		sf:     &singleflight.Group{},
	}
}

func (s *oracleService) LatestPrice(ctx context.Context) (decimal.Decimal, error) {
	if v, err := s.cache.Get(latestKey); err == nil {
		if price, ok := v.(*core.Price); ok {
			return s.check(price)
		}
	}

	v, err, _ := s.sf.Do(latestKey, func() (interface{}, error) {
		price, err := s.prices.Latest(ctx)
		if err != nil {
			return nil, err
		}

		_ = s.cache.SetWithExpire(latestKey, price, 5*time.Second)
		return price, nil
	})
	if err != nil {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return s.check(v.(*core.Price))
}

// a missing, stale or non-positive reading must fail the calls that need it
func (s *oracleService) check(price *core.Price) (decimal.Decimal, error) {
	if !price.Price.IsPositive() {
		return decimal.Zero, core.ErrInvalidPrice
	}

	if time.Since(price.CreatedAt) > s.cfg.MaxAge {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return price.Price.Truncate(core.PriceDecimals), nil
}

func (s *oracleService) PullPriceTicker(ctx context.Context, symbol string, t time.Time) (*core.PriceTicker, error) {
	var ticker core.PriceTicker

	resp, err := resthttp.Request(ctx).
		SetQueryParam("symbol", symbol).
		Get(s.cfg.EndPoint)
	if err != nil {
		return nil, err
	}

	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}
