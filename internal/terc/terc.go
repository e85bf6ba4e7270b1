// 包 terc：TERC 行政代码的层级规则与校验
// 背景：TERC 为层级化数字代码：省（województwo）2 位、县（powiat）4 位、
// 市镇（gmina）7 位（省 2 + 县 2 + 镇 2 + 类型 1）；代码语法校验在查询入口完成，
// 避免非法代码穿透到存储层
package terc

// 层级名到代码长度；未列出的自定义层级不做长度约束
var codeLen = map[string]int{
	"provinces":      2,
	"counties":       4,
	"municipalities": 7,
}

// 第 7 位类型码到单位类型名（沿用 TERYT 的 rodzaj 定义）
var kindNames = map[byte]string{
	'1': "gmina miejska",
	'2': "gmina wiejska",
	'3': "gmina miejsko-wiejska",
	'4': "miasto w gminie miejsko-wiejskiej",
	'5': "obszar wiejski w gminie miejsko-wiejskiej",
	'8': "dzielnica m.st. Warszawa",
	'9': "delegatury w gminach miejskich",
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidCode：校验代码语法是否符合层级要求
// 约束：只做语法检查（数字、长度）；代码是否存在由字典表点查回答
func ValidCode(level, code string) bool {
	if code == "" || !allDigits(code) {
		return false
	}
	if n, ok := codeLen[level]; ok {
		return len(code) == n
	}
	return true
}

// Parent：返回上级单位的 TERC 代码；省级没有上级，返回空串
func Parent(code string) string {
	switch {
	case len(code) > 4:
		return code[:4]
	case len(code) > 2:
		return code[:2]
	}
	return ""
}

// KindName：按代码推断单位类型名
// 背景：2 位与 4 位代码的类型由长度决定；7 位代码类型编码在末位
func KindName(code string) string {
	switch len(code) {
	case 2:
		return "województwo"
	case 4:
		return "powiat"
	case 7:
		if name, ok := kindNames[code[6]]; ok {
			return name
		}
	}
	return ""
}
