package dispatch

import "context"

// Context is re-exported for convenience in callback signatures.
// It avoids importing context in user packages when referencing dispatch types.
type Context = context.Context
