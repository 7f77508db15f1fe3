package crypto

// PINOptions configures the numeric PIN generator.
type PINOptions struct {
	Length int
}

// DefaultPINOptions returns the default four-digit configuration.
func DefaultPINOptions() PINOptions {
	return PINOptions{Length: 4}
}

// Generate draws Length independent uniform digits and concatenates them.
// Leading zeros are kept: a PIN is a digit string, not a number. Draws come
// from crypto/rand like every other variant, since PINs often gate
// financial or device access.
func (o PINOptions) Generate() (Secret, error) {
	if o.Length <= 0 {
		return Secret{}, ErrZeroLength
	}

	result := make([]byte, o.Length)
	for i := range result {
		ch, err := randChar(digitChars)
		if err != nil {
			return Secret{}, err
		}
		result[i] = ch
	}

	return Secret{Value: string(result), Variant: VariantPIN}, nil
}
