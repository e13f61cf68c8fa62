package prompt

import "fmt"

// System is the fixed system-role instruction sent with every request.
const System = "You are an assistant specialized in code analysis and modifications."

const payloadNote = "Here is every file in the codebase to consider, catenated together into one payload. " +
	"Each file is seperated by a header of two newlines, a $$NEWFILE$$ token with the relative path and filename, and then two more newlines:"

// Compose builds the user-role message from the caller's query and the
// concatenated code payload.
func Compose(query, payload string) string {
	return fmt.Sprintf("%s\n\n%s\n%s", query, payloadNote, payload)
}
