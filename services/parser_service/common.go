package parser_service

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// parseMoney 把 "$12.50"、"1,299.00" 这类金额字符串转成 decimal，解析失败时按 0 处理
func parseMoney(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	cleaned := strings.NewReplacer("$", "", ",", "", "€", "", "£", "").Replace(value)
	cleaned = strings.TrimSpace(cleaned)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseInt 数字字段兜底解析，空串或脏数据时返回 fallback
func parseInt(value string, fallback int) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return fallback
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return fallback
	}
	return n
}

// parseDateFormats 按给定格式列表依次尝试解析日期
func parseDateFormats(value string, formats []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range formats {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeKey 状态类字段统一成小写去空白后再查映射表
func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// splitTags 逗号分隔的标签串拆成列表，空白项丢弃
func splitTags(raw string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// rowReader CSV 行与表头的组合，提供按列名取值
type rowReader struct {
	header map[string]int
	row    []string
}

func (r rowReader) get(column string) string {
	i, ok := r.header[column]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

// openDelimited 打开 CSV/TSV 文件并探测分隔符
// 导出文件常带 UTF-8 BOM，这里需要剥掉，否则第一列列名匹配不上
func openDelimited(path string, sniffDelimiter bool) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	br := bufio.NewReader(f)
	if bom, err := br.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}

	delimiter := ','
	if sniffDelimiter {
		// 取前 1KB 内容判断是 tab 还是逗号分隔
		if sample, err := br.Peek(1024); err == nil || err == io.EOF {
			if strings.Contains(string(sample), "\t") {
				delimiter = '\t'
			}
		}
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader, f, nil
}

// readHeader 读出表头并建立列名索引
func readHeader(reader *csv.Reader) (map[string]int, error) {
	columns, err := reader.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(columns))
	for i, c := range columns {
		header[strings.TrimSpace(c)] = i
	}
	return header, nil
}
