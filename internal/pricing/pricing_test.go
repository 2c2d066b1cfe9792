package pricing

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/quantad/internal/autodiff"
	"github.com/born-ml/quantad/internal/autodiff/ops"
	"github.com/born-ml/quantad/internal/optim"
	"github.com/born-ml/quantad/internal/parallel"
)

var atm = Option{Kind: Call, Spot: 100, Strike: 100, Rate: 0.05, Volatility: 0.2, Expiry: 1}

// closedForm returns the textbook Black-Scholes Greeks.
func closedForm(o Option) Greeks {
	sqrtT := math.Sqrt(o.Expiry)
	d1 := (math.Log(o.Spot/o.Strike) + (o.Rate+0.5*o.Volatility*o.Volatility)*o.Expiry) / (o.Volatility * sqrtT)
	d2 := d1 - o.Volatility*sqrtT
	df := math.Exp(-o.Rate * o.Expiry)
	N, pdf := ops.NormCDF, ops.NormPDF

	vega := o.Spot * pdf(d1) * sqrtT
	decay := -o.Spot * pdf(d1) * o.Volatility / (2 * sqrtT)
	if o.Kind == Put {
		return Greeks{
			Price:     o.Strike*df*N(-d2) - o.Spot*N(-d1),
			Delta:     N(d1) - 1,
			Vega:      vega,
			Rho:       -o.Strike * o.Expiry * df * N(-d2),
			Theta:     decay + o.Rate*o.Strike*df*N(-d2),
			DualDelta: df * N(-d2),
		}
	}
	return Greeks{
		Price:     o.Spot*N(d1) - o.Strike*df*N(d2),
		Delta:     N(d1),
		Vega:      vega,
		Rho:       o.Strike * o.Expiry * df * N(d2),
		Theta:     decay - o.Rate*o.Strike*df*N(d2),
		DualDelta: -df * N(d2),
	}
}

func assertGreeks(t *testing.T, want, got Greeks) {
	t.Helper()
	assert.InDelta(t, want.Price, got.Price, 1e-10, "price")
	assert.InDelta(t, want.Delta, got.Delta, 1e-10, "delta")
	assert.InDelta(t, want.Vega, got.Vega, 1e-9, "vega")
	assert.InDelta(t, want.Rho, got.Rho, 1e-9, "rho")
	assert.InDelta(t, want.Theta, got.Theta, 1e-9, "theta")
	assert.InDelta(t, want.DualDelta, got.DualDelta, 1e-10, "dual delta")
}

func TestPrice_ReferenceValues(t *testing.T) {
	call, err := Price(atm)
	require.NoError(t, err)
	assert.InDelta(t, 10.450583572185565, call.Price, 1e-9)

	put := atm
	put.Kind = Put
	p, err := Price(put)
	require.NoError(t, err)
	assert.InDelta(t, 5.573526022256971, p.Price, 1e-9)
}

func TestPrice_MatchesClosedForm(t *testing.T) {
	options := []Option{
		atm,
		{Kind: Put, Spot: 100, Strike: 100, Rate: 0.05, Volatility: 0.2, Expiry: 1},
		{Kind: Call, Spot: 80, Strike: 100, Rate: 0.01, Volatility: 0.35, Expiry: 0.5},
		{Kind: Put, Spot: 120, Strike: 95, Rate: 0.03, Volatility: 0.15, Expiry: 2},
		{Kind: Call, Spot: 50, Strike: 55, Rate: -0.005, Volatility: 0.6, Expiry: 0.1},
	}
	for _, o := range options {
		t.Run(o.Kind.String(), func(t *testing.T) {
			got, err := Price(o)
			require.NoError(t, err)
			assertGreeks(t, closedForm(o), got)
		})
	}
}

func TestPrice_PutCallParity(t *testing.T) {
	call, err := Price(atm)
	require.NoError(t, err)
	putOpt := atm
	putOpt.Kind = Put
	put, err := Price(putOpt)
	require.NoError(t, err)

	df := math.Exp(-atm.Rate * atm.Expiry)
	assert.InDelta(t, atm.Spot-atm.Strike*df, call.Price-put.Price, 1e-10)
	assert.InDelta(t, 1.0, call.Delta-put.Delta, 1e-12)
	assert.InDelta(t, call.Vega, put.Vega, 1e-9)
}

func TestPrice_InvalidOption(t *testing.T) {
	bad := []Option{
		{Kind: Call, Spot: 0, Strike: 100, Volatility: 0.2, Expiry: 1},
		{Kind: Call, Spot: 100, Strike: -1, Volatility: 0.2, Expiry: 1},
		{Kind: Call, Spot: 100, Strike: 100, Volatility: 0, Expiry: 1},
		{Kind: Call, Spot: 100, Strike: 100, Volatility: 0.2, Expiry: 0},
		{Kind: Kind(7), Spot: 100, Strike: 100, Volatility: 0.2, Expiry: 1},
	}
	for _, o := range bad {
		_, err := Price(o)
		assert.ErrorIs(t, err, ErrInvalidOption, "%+v", o)
	}
}

func TestPriceOn_ReusesGraph(t *testing.T) {
	g := autodiff.NewGraph()
	first, err := PriceOn(g, atm)
	require.NoError(t, err)
	n := g.Len()

	second, err := PriceOn(g, atm)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, n, g.Len(), "PriceOn resets the graph before recording")
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"call": Call, "CALL": Call, " p ": Put, "put": Put} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("straddle")
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestImpliedVolatility_RoundTrip(t *testing.T) {
	for _, vol := range []float64{0.1, 0.3, 0.6} {
		for _, kind := range []Kind{Call, Put} {
			o := atm
			o.Kind = kind
			o.Volatility = vol
			g, err := Price(o)
			require.NoError(t, err)

			guess := o
			guess.Volatility = 0
			got, err := ImpliedVolatility(guess, g.Price, optim.NewtonConfig{Tolerance: 1e-12})
			require.NoError(t, err)
			assert.InDelta(t, vol, got, 1e-8, "%v vol %g", kind, vol)
		}
	}
}

func TestImpliedVolatility_OutOfBounds(t *testing.T) {
	_, err := ImpliedVolatility(atm, 200, optim.NewtonConfig{})
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = ImpliedVolatility(atm, 1, optim.NewtonConfig{})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestValuePortfolio(t *testing.T) {
	positions := make([]Position, 0, 64)
	var want Greeks
	for i := 0; i < 64; i++ {
		o := atm
		o.Strike = 80 + float64(i)
		if i%2 == 1 {
			o.Kind = Put
		}
		q := float64(i%5) - 2
		positions = append(positions, Position{Option: o, Quantity: q})
		want = want.Plus(closedForm(o).Scale(q))
	}

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
	val, err := ValuePortfolio(context.Background(), positions, cfg)
	require.NoError(t, err)
	require.Len(t, val.Positions, len(positions))
	assertGreeks(t, want, val.Total)
	assertGreeks(t, closedForm(positions[10].Option), val.Positions[10])
}

func TestValuePortfolio_Error(t *testing.T) {
	positions := []Position{
		{Option: atm, Quantity: 1},
		{Option: Option{Kind: Call, Spot: -1, Strike: 100, Volatility: 0.2, Expiry: 1}, Quantity: 1},
	}
	_, err := ValuePortfolio(context.Background(), positions, parallel.Config{})
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.ErrorContains(t, err, "position 1")
}
