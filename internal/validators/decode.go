package validators

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies cleaned data into out, matching keys against json tags.
func Decode(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("error creating decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("error decoding validated data: %w", err)
	}
	return nil
}

// Present reports whether field was sent with a non-null value.
func Present(input map[string]any, field string) bool {
	value, ok := input[field]
	return ok && value != nil
}
