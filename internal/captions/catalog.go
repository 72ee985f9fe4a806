package captions

// Category groups templates by the kind of joke.
type Category string

const (
	Corporate Category = "corporate"
	Startup   Category = "startup"
	Tech      Category = "tech"
	Generic   Category = "generic"
	Custom    Category = "custom"
)

// Template is an immutable top/bottom caption pair.
type Template struct {
	TopText    string   `json:"top_text"`
	BottomText string   `json:"bottom_text"`
	Category   Category `json:"category"`
}

// catalog is the built-in template list. Several entries are rewordings of
// the same joke; they are kept for variety.
var catalog = []Template{
	{"WHEN YOU'RE THE BOSS", "BUT STILL CAN'T FIX THE PRINTER", Corporate},
	{"COMPANY VALUES:", "WORK-LIFE BALANCE NOT INCLUDED", Corporate},
	{"WE'RE A FAMILY HERE", "THANKSGIVING DINNER OPTIONAL", Corporate},
	{"SYNERGY ACHIEVED", "NOBODY KNOWS WHAT IT MEANS", Corporate},
	{"HIRING ISN'T EASY", "BUT FIRE IS EASY", Corporate},

	{"DISRUPTING THE MARKET", "ONE BUG AT A TIME", Startup},
	{"MOVE FAST AND BREAK THINGS", "MISSION ACCOMPLISHED", Startup},
	{"PIVOT! PIVOT! PIVOT!", "STILL LOST", Startup},
	{"UNICORN STATUS", "MYTHICAL AND OVERVALUED", Startup},
	{"RAISING FUNDS", "DOESN'T MEAN YOU'RE DOING ANYTHING", Startup},
	{"WE'RE BUILDING THE FUTURE", "ONE BUG AT A TIME", Startup},

	{"IT WORKS ON MY MACHINE", "FAMOUS LAST WORDS", Tech},
	{"ARTIFICIAL INTELLIGENCE", "ARTIFICIALLY INTELLIGENT", Tech},
	{"CLOUD COMPUTING", "SOMEONE ELSE'S COMPUTER", Tech},
	{"BLOCKCHAIN EVERYTHING", "PROBLEM SOLVED?", Tech},
	{"AI ASSISTANT", "DOESN'T DO ANYTHING", Tech},
	{"SOFTWARE DEVELOPMENT", "MAY THE SOURCE BE WITH YOU", Tech},

	{"QUARTERLY RESULTS", "EXCEEDED EXPECTATIONS (BARELY)", Generic},
	{"CUSTOMER SERVICE", "PLEASE HOLD... FOREVER", Generic},
	{"BRAND NEW STRATEGY", "SAME AS THE OLD STRATEGY", Generic},
	{"INNOVATION AT ITS FINEST", "CTRL+C, CTRL+V", Generic},
	{"GOING VIRAL", "LIKE A COMPUTER VIRUS", Generic},
	{"MARKET LEADER", "IN A MARKET OF ONE", Generic},
	{"CUSTOMER SATISFACTION", "RESULTS MAY VARY", Generic},
	{"THINKING OUTSIDE THE BOX", "BOX SOLD SEPARATELY", Generic},
	{"BEST PRACTICES", "PRACTICED BY THE BEST", Generic},
	{"SCALABLE SOLUTION", "SCALING DOWN INCLUDED", Generic},
	{"INNOVATION AT ITS FINEST", "CTRL+C, CTRL+V", Generic},

	{"COMPANY VALUES:", "WORK-LIFE BALANCE SOLD SEPARATELY", Corporate},
	{"HIRING ISN'T EASY", "BUT FIRING FEELS GREAT", Corporate},
	{"MOVE FAST AND BREAK THINGS", "NOW WE HAVE MORE THINGS TO FIX", Startup},
	{"PIVOT! PIVOT! PIVOT!", "STILL HEADING NOWHERE", Startup},
	{"UNICORN STATUS", "MYTHICAL, MAGICAL, OVERVALUED", Startup},
	{"RAISING FUNDS", "DOESN'T MEAN YOU HAVE A PRODUCT", Startup},
	{"WE'RE BUILDING THE FUTURE", "CURRENTLY CRASHING IN BETA", Startup},
	{"ARTIFICIAL INTELLIGENCE", "STILL DOESN'T UNDERSTAND HUMOR", Tech},
	{"QUARTERLY RESULTS", "BEAT EXPECTATIONS BY 0.01%", Generic},
	{"CUSTOMER SERVICE", "PLEASE HOLD FOREVER AND ENJOY THE MUSIC", Generic},
	{"BRAND NEW STRATEGY", "EXACTLY LIKE THE OLD ONE", Generic},
	{"BEST PRACTICES", "AS RECOMMENDED BY PEOPLE WHO DON'T DO IT", Generic},
}

// Catalog returns a copy of the built-in templates in catalog order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}
