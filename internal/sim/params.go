package sim

// Coefficients are the ten named model weights. Every weight defaults to
// 1.0; the update rule multiplies each flow by its weight.
type Coefficients struct {
	Var1  float64 // motivation increase
	Var2  float64 // challenge share of recovery loss
	Var3  float64 // hindrance share of recovery loss
	Var4  float64 // challenge share of strain increase
	Var5  float64 // hindrance share of strain increase
	Var6  float64 // strain decrease
	Var7  float64 // motivation decrease
	Var8  float64 // effort ceiling
	Var9  float64 // motivation share of wellbeing
	Var10 float64 // strain share of wellbeing
}

// DefaultCoefficients returns all weights at 1.0.
func DefaultCoefficients() Coefficients {
	return Coefficients{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
}

// CoefficientsFromMap overlays a sparse map keyed "var1".."var10" onto the
// defaults. Unspecified keys keep 1.0; unrecognized keys are ignored.
func CoefficientsFromMap(m map[string]float64) Coefficients {
	c := DefaultCoefficients()
	for key, v := range m {
		switch key {
		case "var1":
			c.Var1 = v
		case "var2":
			c.Var2 = v
		case "var3":
			c.Var3 = v
		case "var4":
			c.Var4 = v
		case "var5":
			c.Var5 = v
		case "var6":
			c.Var6 = v
		case "var7":
			c.Var7 = v
		case "var8":
			c.Var8 = v
		case "var9":
			c.Var9 = v
		case "var10":
			c.Var10 = v
		}
	}
	return c
}

// Map returns the weights keyed "var1".."var10", the inverse of
// [CoefficientsFromMap].
func (c Coefficients) Map() map[string]float64 {
	return map[string]float64{
		"var1":  c.Var1,
		"var2":  c.Var2,
		"var3":  c.Var3,
		"var4":  c.Var4,
		"var5":  c.Var5,
		"var6":  c.Var6,
		"var7":  c.Var7,
		"var8":  c.Var8,
		"var9":  c.Var9,
		"var10": c.Var10,
	}
}

// Parameters describe one founder profile. Traits live in [0, 1]; values
// outside that range are not validated and simply flow through the
// formulas. A Parameters value is immutable for the duration of a run.
type Parameters struct {
	Ambition       float64
	Skill          float64
	SelfRegulation float64
	Dynamism       float64
	Coeffs         Coefficients
}

// DefaultParameters returns the baseline founder profile.
func DefaultParameters() Parameters {
	return Parameters{
		Ambition:       0.5,
		Skill:          0.5,
		SelfRegulation: 0.5,
		Dynamism:       0.2,
		Coeffs:         DefaultCoefficients(),
	}
}
