package as5100

import "fmt"

// CheckStiffenerCount returns a *ConfigurationError unless n is a stiffener
// count the geometry and buckling rules support.
func CheckStiffenerCount(n int) error {
	if n < MinStiffeners || n > MaxStiffeners {
		return &ConfigurationError{Param: "n_stif", Value: n}
	}
	return nil
}

// ConfigurationError reports an unsupported configuration value. Operations
// that return it produce no partial result.
type ConfigurationError struct {
	Param string
	Value int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unsupported %s = %d (supported: %d to %d)", e.Param, e.Value, MinStiffeners, MaxStiffeners)
}
