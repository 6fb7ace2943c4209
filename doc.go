// Package cli implements command dispatch and help rendering for
// multi-subcommand tools. A [Registry] owns an immutable tree of command
// specifications plus an alias table; a [Dispatcher] resolves an invocation
// path against the registry, parses the remaining arguments into typed option
// values and either renders help or runs the command's behavior hook.
//
// The package favors explicit construction over ambient state: the registry
// is built once at startup and is read-only afterwards, and every collaborator
// (reporter, logger, standard streams) is injected through [DispatchOptions].
package cli
