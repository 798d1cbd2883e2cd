package cricbuzz

// Cricbuzz swaps the status banner's class with the match state, so the
// update text is probed through a fixed list and the first selector with
// non-empty text wins. The order is a priority: terminal states first,
// interruptions after, toss status as the catch-all. Do not reorder.
var statusSelectors = []string{
	"div.cb-text-complete",
	"div.cb-text-inprogress",
	"div.cb-text-abandon",
	"div.cb-text-stumps",
	"div.cb-text-lunch",
	"div.cb-text-inningsbreak",
	"div.cb-text-tea",
	"div.cb-text-rain",
	"div.cb-text-wetoutfield",
	"div.cb-text-delay",
	"div.cb-toss-sts",
}

const (
	titleSelector     = "h1.cb-nav-hdr.cb-font-18.line-ht24"
	startDateSelector = "span[itemprop=startDate]"
	liveScoreSelector = "div.cb-min-bat-rw span.cb-font-20.text-bold"
	runRateSelector   = "span.cb-font-12.cb-text-gray"

	titleSuffix = " - Live Cricket Score, Commentary"
)
