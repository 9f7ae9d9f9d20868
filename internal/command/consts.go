package command

const (
	// ============================================================================
	// Command Keywords
	// ============================================================================

	// KeywordRequest requests memory: RQ <pid> <size> <strategy>
	KeywordRequest = "RQ"

	// KeywordRelease releases all memory of a process: RL <pid>
	KeywordRelease = "RL"

	// KeywordCompact compacts memory: C
	KeywordCompact = "C"

	// KeywordStatus reports the region table: STAT
	KeywordStatus = "STAT"

	// KeywordStats reports usage and fragmentation figures: STATS
	KeywordStats = "STATS"

	// KeywordHelp lists the commands: HELP
	KeywordHelp = "HELP"

	// KeywordExit ends the session: X
	KeywordExit = "X"

	// ============================================================================
	// Script Syntax
	// ============================================================================

	// CommentPrefix marks a comment line in command scripts
	CommentPrefix = "#"

	// ============================================================================
	// Usage Lines
	// ============================================================================

	UsageRequest = "RQ <process_id> <memory_size> <strategy>"
	UsageRelease = "RL <process_id>"

	// HelpText lists the available commands.
	HelpText = "Available commands: RQ (request), RL (release), C (compact), " +
		"STAT (status), STATS (summary), HELP, X (exit)"
)
