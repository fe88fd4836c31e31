package model

import "fmt"

// IntToAlphabet converts a positive integer into a base-26 "number" using
// uppercase ASCII letters: 1=A, 2=B, ..., 26=Z, 27=AA, 28=AB, etc.
// Zero converts to the empty string.
func IntToAlphabet(value int) (string, error) {
	if value == 0 {
		return "", nil
	}
	if value < 0 {
		return "", fmt.Errorf("%w: negative column number %d", ErrInvalidBounds, value)
	}
	var letters []byte
	q, r := (value-1)/26, (value-1)%26
	letters = append(letters, byte('A'+r))
	for q > 0 {
		q, r = (q-1)/26, (q-1)%26
		letters = append([]byte{byte('A' + r)}, letters...)
	}
	return string(letters), nil
}

// AlphabetToInt converts a base-26 "number" of uppercase ASCII letters into
// an integer. The empty string converts to zero.
func AlphabetToInt(letters string) (int, error) {
	value := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: invalid column letters %q", ErrInvalidBounds, letters)
		}
		value = value*26 + int(c-'A') + 1
	}
	return value, nil
}
