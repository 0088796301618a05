package randx

func last(args []float64) float64 {
	return args[len(args)-1]
}

func positive(name string) check {
	return func(args []float64) error {
		if last(args) <= 0 {
			return valueError(name, "must be greater than zero")
		}
		return nil
	}
}

func nonNegative(name string) check {
	return func(args []float64) error {
		if last(args) < 0 {
			return valueError(name, "must be greater than or equal to zero")
		}
		return nil
	}
}

func probability(name string) check {
	return func(args []float64) error {
		if p := last(args); p < 0 || p > 1 {
			return valueError(name, "must be between 0 and 1")
		}
		return nil
	}
}
