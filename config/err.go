package config

import (
	"errors"

	"github.com/ezrec/casl/translate"
)

var f = translate.From

var (
	ErrConfigType  = errors.New(f("wrong type"))
	ErrConfigRange = errors.New(f("value out of range"))
)

// ErrConfig reports a bad manifest setting.
type ErrConfig struct {
	File string
	Key  string
	Err  error
}

func (err *ErrConfig) Error() string {
	if err.Key == "" {
		return f("%v: %v", err.File, err.Err)
	}
	return f("%v: %v: %v", err.File, err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
