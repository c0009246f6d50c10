package wallee_test

import "github.com/eluv-io/wallee-go"

func createErrorWithExtraLongFilename() error {
	return wallee.Msg("origin")
}
