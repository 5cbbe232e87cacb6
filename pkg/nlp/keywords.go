package nlp

import "regexp"

// Keyword tables and threshold constants below encode tuned product rules.
// Values are kept verbatim; do not adjust them without re-running the
// characterization tests.

const (
	// contextWindowSize is how far back (in characters) a money mention
	// looks for a role keyword.
	contextWindowSize = 80
	// contextMaxGap is the maximum distance between a keyword's end and
	// the mention start for the keyword to still count as its context.
	contextMaxGap = 50
	// duplicateMatchRadius treats target matches starting within this many
	// characters of an accepted match as the same capture.
	duplicateMatchRadius = 5
	// looseGapLimit is the noun-to-amount distance for the fallback
	// target-extraction strategy.
	looseGapLimit = 20
	// shortMessageLimit bounds greeting-only / help-only messages.
	shortMessageLimit = 30
)

// Role keywords for amount slot assignment. Order inside each list does not
// matter; the nearest preceding keyword wins, monthly/weekly beating target
// keywords on distance ties.
var (
	monthlyKeywords = []string{
		"per bulan", "perbulan", "sebulan", "/bulan", "bulanan",
		"gaji", "penghasilan", "pendapatan", "uang jajan", "uang saku",
	}

	weeklyKeywords = []string{
		"per minggu", "perminggu", "seminggu", "/minggu", "mingguan",
	}

	targetContextKeywords = []string{
		"harga", "seharga", "target", "budget", "beli", "membeli", "punya",
	}
)

// itemKeywords is the fixed dictionary of purchasable-item nouns the
// multi-target extractor recognizes. Longer spellings come before their
// prefixes so the alternation picks them first.
var itemKeywords = []string{
	"laptop", "komputer", "macbook", "iphone", "ipad", "tablet",
	"handphone", "hp", "smartphone", "motor", "mobil", "vespa", "sepeda",
	"kamera", "drone", "televisi", "tv", "kulkas", "ac", "mesin cuci",
	"playstation", "ps5", "nintendo", "xbox", "gitar", "keyboard",
	"monitor", "printer", "kursi gaming", "jam tangan", "sepatu", "tas",
	"kacamata", "headphone", "speaker", "emas",
}

// Words stripped from a captured modifier before it is appended to the item
// name ("macbook dengan gaji 20jt" must not become "macbook dengan gaji").
var modifierStripWords = map[string]bool{
	"gaji": true, "per": true, "bulan": true, "sebulan": true,
	"minggu": true, "seminggu": true, "dengan": true, "uang": true,
	"jajan": true, "saku": true, "harga": true, "seharga": true,
	"sekitar": true, "cuma": true, "sekarang": true,
}

// Goal simulation detection.
var (
	goalExplicitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`ingin .*berapa lama`),
		regexp.MustCompile(`mau .*berapa lama`),
		regexp.MustCompile(`pengen .*berapa lama`),
		regexp.MustCompile(`target .*berapa (bulan|lama|minggu)`),
		regexp.MustCompile(`nabung .*berapa`),
		regexp.MustCompile(`menabung .*berapa`),
		regexp.MustCompile(`kapan .*(kebeli|terbeli|tercapai|terkumpul)`),
		regexp.MustCompile(`butuh (waktu )?berapa`),
	}

	goalStrongKeywords = []string{
		"berapa lama", "kira-kira", "kira2", "simulasi", "estimasi",
	}

	goalIntentPhrases = []string{
		"ingin beli", "ingin membeli", "ingin punya",
		"mau beli", "mau membeli", "mau punya",
		"pengen beli", "pengen punya",
		"nabung buat", "nabung untuk", "menabung untuk",
	}

	timeQuestionPattern = regexp.MustCompile(`berapa|kapan|lama|bulan|minggu`)
)

// Future budget planning detection.
var (
	// Duration questions belong to goal simulation, never planning.
	durationQuestionPattern = regexp.MustCompile(`berapa (lama|bulan|minggu)`)

	futurePlanPatterns = []*regexp.Regexp{
		regexp.MustCompile(`rencana(kan)? .*(hari|minggu|bulan)`),
		regexp.MustCompile(`alokasi(kan)? .*uang`),
		regexp.MustCompile(`atur .*uang`),
		regexp.MustCompile(`uang .*(cukup|bertahan)`),
		regexp.MustCompile(`(minggu|bulan) depan`),
	}

	futureTimeKeywords = []string{
		"minggu depan", "bulan depan", "ke depan", "kedepan",
		"rencana", "planning", "persiapan",
	}

	periodCountPattern = regexp.MustCompile(`(\d+)\s*(hari|minggu|bulan)`)

	useBalancePhrases = []string{
		"saldo saya", "uang yang saya miliki", "uang saya",
		"cara paling hemat", "pakai saldo", "pake saldo", "dengan saldo",
	}
)

var (
	greetingWords = []string{
		"halo", "hai", "hello", "hi", "hey", "pagi", "siang", "sore",
		"malam", "selamat", "assalamualaikum",
	}

	helpKeywords = []string{
		"help", "bantuan", "bantu", "tolong", "bisa apa", "fitur",
		"panduan", "menu",
	}
)

// Report intents, matched by earliest keyword position.
var (
	saldoKeywords = []string{
		"saldo", "balance", "sisa uang", "duit saya", "punya berapa",
	}

	pengeluaranKeywords = []string{
		"pengeluaran", "keluar", "belanja", "spending", "expense", "boros",
	}

	pemasukanKeywords = []string{
		"pemasukan", "pendapatan", "penghasilan", "income", "uang masuk", "gajian",
	}

	kategoriKeywords = []string{
		"kategori", "category", "rincian", "breakdown", "per kategori",
	}

	recommendationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`saran|rekomendasi|tips|advice`),
		regexp.MustCompile(`analisis|analisa|evaluasi`),
		regexp.MustCompile(`gimana (cara|keuangan)|bagaimana (cara|keuangan)`),
		regexp.MustCompile(`sehat|hemat`),
	}
)

// officialCategories maps the ledger's official expense categories to their
// direct aliases. Anything outside this table becomes a free-text search
// keyword instead.
var officialCategories = []struct {
	Name    string
	Aliases []string
}{
	{"Makan", []string{"makanan", "makan", "food"}},
	{"Transport", []string{"transportasi", "transport"}},
	{"Nongkrong", []string{"nongkrong", "hangout", "ngopi"}},
	{"Akademik", []string{"akademik", "pendidikan", "kuliah"}},
	{"Lainnya", []string{"lainnya", "lain-lain"}},
}

// spendingKeywords anchor the free-text search keyword: the first non-noise
// token after one of these becomes the keyword.
var spendingKeywords = []string{"pengeluaran", "belanja", "beli", "keluar"}

// noiseWords are skipped when hunting for a search keyword: pronouns, time
// words and connectives that never name a thing being bought.
var noiseWords = map[string]bool{
	"saya": true, "aku": true, "ku": true, "kamu": true, "anda": true,
	"bulan": true, "minggu": true, "hari": true, "ini": true, "itu": true,
	"kemarin": true, "lalu": true, "tadi": true, "sekarang": true,
	"yang": true, "untuk": true, "buat": true, "di": true, "ke": true,
	"dari": true, "dan": true, "atau": true, "apa": true, "berapa": true,
	"total": true, "semua": true, "saja": true, "aja": true, "dong": true,
	"ya": true, "sih": true, "deh": true,
}
