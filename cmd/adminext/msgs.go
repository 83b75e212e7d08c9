package adminext

// Short messages (one-liners)
const (
	MsgRootShort       = "Resolve admin extensions for a service container"
	MsgResolveShort    = "Resolve a project and print the wiring plan"
	MsgExplainShort    = "Explain why each extension applies to an admin"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default is $XDG_CONFIG_HOME/adminext/adminext.toml)"
	MsgFlagFormat       = "Output format: text, table, yaml or toml"
	MsgFlagDigest       = "Include the plan digest"
	MsgFlagAdminTag     = "Tag marking admin services"
	MsgFlagExtensionTag = "Tag marking extension services"
	MsgFlagMapParameter = "Parameter holding the extension map"
	MsgFlagMethod       = "Method receiving each extension"
	MsgFlagWidth        = "Wrap the report at this width (0 = no wrapping)"

	MsgErrNoCommand = "no command specified"
)

// Long descriptions
const (
	MsgRootLong = `adminext decides which extensions apply to which admin services.

Extensions reach an admin through the extension tag (a direct target or rules
evaluated against every admin) and through the extension map parameter. The
resulting plan lists, for each admin, the extensions in the order they are
wired: highest priority first, later registrations first on ties.`

	MsgResolveLong = `Load a project file (YAML, TOML, JSONC or XML), run the resolution pass
and print the wiring plan. Configuration errors such as a missing model_class
or an unknown extension service abort the pass.`

	MsgExplainLong = `Print a markdown report for the given admins, or for every admin of the
plan, showing the resolved model classes and the channel each extension came
through.`
)
