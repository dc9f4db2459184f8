package brand

// ratio вычисляет посимвольную схожесть двух строк по шкале 0–100:
// 100 * (len1 + len2 - indel) / (len1 + len2), где indel — редакционное
// расстояние с запретом замен (замена = удаление + вставка). Совпадает с
// классическим fuzz.ratio.
func ratio(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	total := len(r1) + len(r2)
	if total == 0 {
		return 100
	}
	dist := indelDistance(r1, r2)
	return int(float64(100*(total-dist))/float64(total) + 0.5)
}

// indelDistance редакционное расстояние только со вставками и удалениями.
func indelDistance(r1, r2 []rune) int {
	if len(r1) < len(r2) {
		r1, r2 = r2, r1
	}
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			if r1[i-1] == r2[j-1] {
				curr[j] = prev[j-1]
			} else {
				// без замен: только удаление или вставка
				curr[j] = min(prev[j], curr[j-1]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}
