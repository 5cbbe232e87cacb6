package finance

// Motivational closers keyed by how long the savings plan runs.
// Selection is random per response; the pools themselves are plain
// data so tests can pin the pick with a seeded source.
var (
	shortTermMessages = []string{
		"Cepet banget! Target kamu udah di depan mata, gas terus! 🔥",
		"Mantap, tinggal hitungan bulan aja nih. Jangan kendor ya!",
		"Targetnya deket banget! Konsisten dikit lagi pasti kebeli 💪",
	}

	mediumTermMessages = []string{
		"Setengah tahun itu cepet kok kalau nabungnya rutin. Semangat! 💪",
		"Masih masuk akal banget nih rencananya. Pelan-pelan yang penting jalan!",
		"Lumayan deket targetnya. Coba sisihin di awal bulan biar nggak kepakai 😉",
	}

	longTermMessages = []string{
		"Setahun memang butuh napas panjang, tapi hasilnya bakal worth it! 🎯",
		"Perjalanan masih lumayan, tapi konsistensi kamu yang nentuin. Semangat ya!",
		"Nggak apa-apa agak lama, yang penting targetnya jelas dan nabungnya rutin 💪",
	}

	veryLongTermMessages = []string{
		"Targetnya ambisius nih! Coba cek skenario di bawah biar bisa lebih cepat 🚀",
		"Butuh waktu panjang, tapi bukan berarti nggak mungkin. Yuk lihat cara ngebutnya!",
		"Sabar itu kunci, tapi nambah tabungan bulanan bisa motong waktunya jauh lho 😉",
	}

	infeasiblePlanMessage = "Waduh, dengan kondisi sekarang uang kamu habis buat kebutuhan pokok, jadi belum ada sisa buat nabung 😔\n\nBeberapa hal yang bisa dicoba:\n• Cari pemasukan tambahan, misal freelance atau jualan kecil-kecilan\n• Review lagi pengeluaran bulanan, siapa tahu ada yang bisa dipangkas\n• Turunkan dulu nominal targetnya biar lebih realistis"

	clarifyGoalMessage = "Hmm, aku butuh dua angka buat hitung simulasinya: harga target kamu sama uang jajan/pemasukan bulanan. Coba tulis misalnya \"mau beli laptop 7jt, uang jajan sebulan 2jt, berapa lama?\" ya 😊"
)

func messagesForDuration(months int) []string {
	switch {
	case months <= 3:
		return shortTermMessages
	case months <= 6:
		return mediumTermMessages
	case months <= 12:
		return longTermMessages
	default:
		return veryLongTermMessages
	}
}
