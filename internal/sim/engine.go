package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/venturesim/internal/rng"
)

// sampleEvery is the trajectory sampling cadence: a point is recorded at
// every period divisible by 5. The horizon is inclusive of period 0, so a
// horizon of 500 yields 101 points.
const sampleEvery = 5

// Point is an immutable snapshot recorded at sampling periods. The four
// stocks are the period's opening values (period 0 therefore reads all
// zeros); the flow fields are the quantities computed that period; and
// Wellbeing reflects the stocks after the period's update. All fields are
// rounded to 3 decimal places.
type Point struct {
	Period           int     `json:"period"`
	Motivation       float64 `json:"motivation"`
	Strain           float64 `json:"strain"`
	CumulativeEffort float64 `json:"cumulativeEffort"`
	Performance      float64 `json:"performance"`
	Resources        float64 `json:"resources"`
	Recovery         float64 `json:"recovery"`
	Challenge        float64 `json:"challenge"`
	Hindrance        float64 `json:"hindrance"`
	Effort           float64 `json:"effort"`
	Advance          float64 `json:"advance"`
	Setback          float64 `json:"setback"`
	Wellbeing        float64 `json:"wellbeing"`
}

// Simulate advances the four stocks across periods [0, horizon] inclusive
// and returns the sampled trajectory. Identical params, horizon, and seed
// always produce a bit-identical trajectory.
//
// The only surfaced error is a non-positive horizon. Trait values outside
// [0, 1] are not validated; output is whatever the formulas produce.
func Simulate(params Parameters, horizon int, seed int64) ([]Point, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHorizon, horizon)
	}

	streams := rng.NewStreams(seed)
	c := params.Coeffs

	var motivation, strain, cumEffort, progress float64
	points := make([]Point, 0, horizon/sampleEvery+1)

	for t := 0; t <= horizon; t++ {
		progressSensitivity := float64(t) / float64(horizon)

		relativeProgress := 0.0
		if cumEffort != 0 {
			relativeProgress = progress / cumEffort
		}

		// Time-weighted blend from the ambition-driven baseline toward
		// progress-per-effort efficiency.
		resources := params.Ambition*(1-progressSensitivity) + relativeProgress*progressSensitivity

		// Zero ambition skips the stressor draws entirely, not just their
		// values, so the remaining streams stay aligned either way.
		var challenge, hindrance float64
		if params.Ambition != 0 {
			challenge = streams.Challenge.NextTruncatedNormal(0, params.Ambition, 0, params.Ambition)
			hindrance = streams.Hindrance.NextTruncatedNormal(0, params.Ambition, 0, params.Ambition)
		}

		recovery := 1.0
		if params.Ambition != 0 {
			recovery = 1 - (1-params.SelfRegulation)*(c.Var2*challenge+c.Var3*hindrance)/(2*params.Ambition)
		}

		motivationIncrease := math.Max(challenge, resources) * recovery * c.Var1
		// A decrease can never exceed the motivation available.
		motivationDecrease := math.Min(motivation, (1-params.SelfRegulation)*hindrance*c.Var7)

		strainIncrease := 0.0
		if params.Ambition != 0 {
			strainIncrease = (1 - params.SelfRegulation) * (c.Var4*challenge + c.Var5*hindrance) / (2 * params.Ambition)
		}
		strainDecrease := math.Min(strain, resources*recovery*c.Var6)

		// Flows read last period's closing stocks, never this period's
		// changes.
		effort := 0.0
		if motivation != 0 {
			effort = c.Var8 * logistic(strain-motivation)
		}

		advanceDraw := streams.Advance.NextTruncatedNormal(0, params.Ambition, 0, params.Ambition)
		advance := 0.0
		if params.Skill != 0 {
			advance = effort * params.Skill * advanceDraw
		}

		setbackHit := streams.SetbackHit.NextPoisson(params.Dynamism, 0, 1)
		setbackSize := streams.SetbackSize.NextTruncatedNormal(0, params.Ambition, 0, params.Ambition)
		setback := setbackHit * math.Min(progress, setbackSize)

		point := Point{
			Period:           t,
			Motivation:       round3(motivation),
			Strain:           round3(strain),
			CumulativeEffort: round3(cumEffort),
			Performance:      round3(progress),
			Resources:        round3(resources),
			Recovery:         round3(recovery),
			Challenge:        round3(challenge),
			Hindrance:        round3(hindrance),
			Effort:           round3(effort),
			Advance:          round3(advance),
			Setback:          round3(setback),
		}

		motivation = clampZero(motivation + motivationIncrease - motivationDecrease)
		strain = clampZero(strain + strainIncrease - strainDecrease)
		cumEffort = clampZero(cumEffort + effort)
		progress = clampZero(progress + advance - setback)

		if t%sampleEvery == 0 {
			point.Wellbeing = round3(c.Var9*motivation - c.Var10*strain)
			points = append(points, point)
		}
	}

	return points, nil
}

// logistic computes 1/(1+e^x) without overflowing: for large positive x the
// result saturates to 0 instead of propagating Inf or NaN.
func logistic(x float64) float64 {
	if x > 0 {
		e := math.Exp(-x)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(x))
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// RandomSeed returns a fresh 31-bit base seed for callers that did not fix
// one. Entropy comes from the process-level math/rand source, which is
// explicitly outside the deterministic-reproducibility contract.
func RandomSeed() int64 {
	return rand.Int63n(1 << 31)
}
