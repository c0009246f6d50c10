/*
Package wallee provides a type-erased error value that remembers where it was created.

An Error wraps any error or message behind a single pointer-sized handle. Each Error layer records its Location
(file and line of the call that created it) and optionally a backtrace. Human-readable context can be layered on top
of an existing Error without losing the ability to downcast to the original payload:

	func readConfig(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return wallee.WithContext(err, func() string {
				return fmt.Sprintf("failed to read config from %s", path)
			})
		}
		...
	}

Errors are rendered through the fmt verbs:

	%s, %v   the outermost message only
	%+s      all messages of the chain, joined with ": "
	%#v      location and Go-syntax representation of the outermost payload
	%+v      like %#v, followed by a "Caused by:" list of the chain and the backtrace (if any)

Backtraces are captured with github.com/eluv-io/stack, the same facility github.com/eluv-io/errors-go uses. Build
with the errnostack tag to compile capturing out entirely.
*/
package wallee
