package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiFile    Emoji = "📄" // reading input files
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiCompare   Emoji = "🔄" // comparing two lists
	EmojiCheck     Emoji = "🔍" // checking for duplicates
	EmojiPanel     Emoji = "📋" // a result panel header
	EmojiItem      Emoji = "▫️" // an item inside a result panel
	EmojiDuplicate Emoji = "👯" // a duplicated item
	EmojiRemove    Emoji = "🧹" // removing duplicates
	EmojiSort      Emoji = "🔃" // toggling a sort order

	EmojiBye Emoji = "👋" // bye!

	EmojiGood       Emoji = "😊" // good news
	EmojiUserError  Emoji = "😡" // mistakes made by users
	EmojiError      Emoji = "😞" // failures not caused by the user, such as a broken output
	EmojiImpossible Emoji = "🤯" // the impossible happened
	EmojiHint       Emoji = "💡" // hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
