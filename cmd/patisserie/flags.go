package main

import (
	"errors"
	"strconv"

	"github.com/tombowditch/patisserie/internal/duration"
	"github.com/tombowditch/patisserie/internal/language"
)

type options struct {
	APIKey string `long:"api-key" value-name:"KEY" description:"Your pastery API key. If not provided, it is read from the PASTERY_API_KEY environment variable, then from the env file. You can find it at https://www.pastery.net/account/."`

	Duration durationFlag `short:"d" long:"duration" value-name:"DURATION" default:"1d" description:"How long the paste lives before it is deleted: minutes, or a number followed by m(inute), h(our), d(ay), w(eek), mo(nth) or y(ear)."`

	Language languageFlag `short:"l" long:"lang" value-name:"LANG" description:"The language of the paste. If not provided, it is guessed from the file extension. Use \"autodetect\" to let pastery decide."`

	Title string `short:"t" long:"title" description:"The title of the paste. Defaults to the name of the file."`

	MaxViews maxViewsFlag `long:"max-views" value-name:"N" description:"The number of times the paste can be viewed before it expires."`

	EnvFile string `long:"env-file" value-name:"FILE" description:"dotenv file to read PASTERY_API_KEY from (default: $XDG_CONFIG_HOME/patisserie/env)"`

	Endpoint string `long:"endpoint" hidden:"true" description:"paste creation URL"`

	Verbose bool `short:"v" long:"verbose" description:"Log the request and response to stderr"`

	ListLanguages bool `long:"list-languages" description:"List the languages pastery understands and exit"`

	Version bool `long:"version" description:"Print the version and exit"`

	Args struct {
		Path string `positional-arg-name:"PATH" description:"The file to upload. Standard input is read if not provided."`
	} `positional-args:"yes"`
}

// durationFlag parses --duration as it is read, so a bad value is reported
// as a usage error.
type durationFlag duration.Minutes

func (d *durationFlag) UnmarshalFlag(value string) error {
	m, err := duration.Parse(value)
	if err != nil {
		return err
	}
	*d = durationFlag(m)
	return nil
}

type languageFlag string

func (l *languageFlag) UnmarshalFlag(value string) error {
	name, err := language.Validate(value)
	if err != nil {
		return err
	}
	*l = languageFlag(name)
	return nil
}

// maxViewsFlag is zero until --max-views is given.
type maxViewsFlag uint32

var errZeroViews = errors.New("max views must be a positive number")

func (m *maxViewsFlag) UnmarshalFlag(value string) error {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return err
	}
	if n == 0 {
		return errZeroViews
	}
	*m = maxViewsFlag(n)
	return nil
}
