package io

import (
	"errors"

	"github.com/ezrec/simpletron/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("console output closed"))

	// Image errors
	ErrImageLine = errors.New(f("image line must be 'ADDRESS VALUE'"))
)
