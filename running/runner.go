package running

// imperialBMIFactor converts the lbs/in² ratio onto the metric BMI scale.
const imperialBMIFactor = 703.0

// Runner is an immutable runner profile. Weight and height are read in
// the profile's unit system: kilograms and meters under Metric, pounds
// and inches under Imperial.
type Runner struct {
	weight float64
	height float64
	age    int
	system System
}

// NewRunner creates a runner profile.
func NewRunner(system System, weight, height float64, age int) (Runner, error) {
	if weight <= 0 || height <= 0 {
		return Runner{}, ErrInvalidProfile
	}
	if age < 0 {
		return Runner{}, ErrNegativeAge
	}
	return Runner{weight: weight, height: height, age: age, system: system}, nil
}

// Weight returns the runner's weight in the system's unit.
func (r Runner) Weight() float64 {
	return r.weight
}

// Height returns the runner's height in the system's unit.
func (r Runner) Height() float64 {
	return r.height
}

// Age returns the runner's age in years.
func (r Runner) Age() int {
	return r.age
}

// System returns the unit system the profile is measured in.
func (r Runner) System() System {
	return r.system
}

// BMI returns the body mass index. Equivalent metric and imperial
// profiles yield the same index up to the precision of the 703 factor.
func (r Runner) BMI() float64 {
	bmi := r.weight / (r.height * r.height)
	if r.system == Imperial {
		bmi *= imperialBMIFactor
	}
	return bmi
}
