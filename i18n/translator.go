package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return withExpected("型が不正です", data, "期待値")
		case "invalid_enum":
			return withExpected("許可されていない値です", data, "期待値")
		case "no_match":
			return "どの候補にも一致しません"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_field":
			return "宣言されていないフィールドです"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "row_limit_exceeded":
			return "データの行数が上限を超えています"
		case "unsupported_format":
			return "未対応の出力形式です"
		case "unsupported_data":
			return "未対応のデータ形式です"
		case "schema_version_mismatch":
			return "スキーマのバージョンが一致しません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return withExpected("invalid type", data, "expected")
		case "invalid_enum":
			return withExpected("value not allowed", data, "expected")
		case "no_match":
			return "no alternative matched"
		case "required":
			return "required property missing"
		case "unknown_field":
			if f := data["field"]; f != "" && data["type"] != "" {
				return "unknown field " + f + " on " + data["type"]
			}
			return "unknown field"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		case "row_limit_exceeded":
			return "dataset exceeds max_rows"
		case "unsupported_format":
			return "unsupported output format"
		case "unsupported_data":
			return "unsupported data binding"
		case "schema_version_mismatch":
			return "schema version mismatch"
		}
	}
	return code
}

func withExpected(msg string, data map[string]string, label string) string {
	if e := data["expected"]; e != "" {
		return msg + " (" + label + ": " + e + ")"
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
