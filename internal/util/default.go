package util

// SetDefaultIfZero sets *v to defaultVal if *v is the zero value of V.
func SetDefaultIfZero[V comparable](v *V, defaultVal V) {
	var zeroVal V
	if *v == zeroVal {
		*v = defaultVal
	}
}
