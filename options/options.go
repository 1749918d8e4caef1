package options

// ContextOptions configures window/context creation and the demo
// render loop. Fields are pointers so they can be wired straight to
// flag declarations.
type ContextOptions struct {
	Width    *int
	Height   *int
	Title    *string
	Duration *float64 // seconds; <= 0 runs until the window closes
	Visible  *bool
}
