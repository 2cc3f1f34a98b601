package gql

import (
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/mitchellh/mapstructure"
)

// decode copia un argumento de entrada (map) al DTO usando los tags json.
func decode(input interface{}, out interface{}) error {
	if input == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return &domain.UserInputError{Message: "Invalid input.", Errors: map[string]string{"general": err.Error()}}
	}
	return nil
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}
