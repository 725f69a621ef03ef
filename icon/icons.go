package icon

// Icon identifies a registered UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Lock
	Link
	Note
)

// icons is the global registry mapping each symbol to its per-variant renderings.
var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(✿◠‿◠)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・;)",
		squares: "🟨",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "#",
		kaomoji: "(¬_¬)",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(つ✧ω✧)つ",
		squares: "🟪",
	},
	Note: {
		emoji:   "📝",
		nerd:    "",
		plain:   "*",
		kaomoji: "φ(．．)",
		squares: "🟧",
	},
}
