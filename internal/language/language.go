package language

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const Default = "en"

var ErrUnsupported = errors.New("unsupported language")

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var supported = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi"},
	{Code: "bn", Name: "Bengali"},
	{Code: "te", Name: "Telugu"},
	{Code: "mr", Name: "Marathi"},
	{Code: "ta", Name: "Tamil"},
}

func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Lookup normalises a BCP-47 tag ("en-IN", "HI") to one of the supported base codes.
func Lookup(code string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return Language{}, fmt.Errorf("%w: invalid code %q", ErrUnsupported, code)
	}
	base, _ := tag.Base()
	for _, l := range supported {
		if l.Code == base.String() {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnsupported, code)
}
