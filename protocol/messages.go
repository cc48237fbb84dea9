package protocol

import (
	"strconv"

	"github.com/valyala/fasttemplate"
)

// Message templates use single-brace {VAR} placeholders.
// Unknown placeholders are left as-is.
const (
	startTemplate    = "starting hash calculation ({algorithm})"
	progressTemplate = "processed {percent}%"
	completeMessage  = "calculation complete"
)

// StartMessage is the text of the 0% progress event.
func StartMessage(algorithm string) string {
	return fasttemplate.ExecuteStringStd(
		startTemplate, "{", "}",
		map[string]interface{}{"algorithm": algorithm},
	)
}

// ProgressMessage is the text of a streaming progress event.
func ProgressMessage(percent int) string {
	return fasttemplate.ExecuteStringStd(
		progressTemplate, "{", "}",
		map[string]interface{}{"percent": strconv.Itoa(percent)},
	)
}

// CompleteMessage is the text of the 100% progress event.
func CompleteMessage() string {
	return completeMessage
}

// ProgressText returns the message that accompanies percent
// for the given algorithm.
func ProgressText(percent int, algorithm string) string {
	switch percent {
	case 0:
		return StartMessage(algorithm)
	case 100:
		return CompleteMessage()
	default:
		return ProgressMessage(percent)
	}
}
