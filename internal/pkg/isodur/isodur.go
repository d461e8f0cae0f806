// Package isodur 解析 YouTube contentDetails.duration 使用的 ISO-8601 时长记号。
package isodur

import (
	"regexp"
	"strconv"
)

var durRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// Seconds 把 PT#H#M#S 形式的时长换算成总秒数。
// 三个分量都可缺省，缺省按 0 计；空串或无法解析时返回哨兵值 0。
// 有损转换，不支持反向编码。
func Seconds(token string) int {
	m := durRegex.FindStringSubmatch(token)
	if m == nil {
		return 0
	}

	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		total += n * unit
	}

	return total
}
