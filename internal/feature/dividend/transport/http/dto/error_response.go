package dto

// ErrorResponse はエラー時の共通レスポンスです。error 以外は該当する場合のみ出力します。
type ErrorResponse struct {
	Error  string `json:"error"`
	Hint   string `json:"hint,omitempty"`   // 設定不備の対処方法
	Note   string `json:"note,omitempty"`   // プロバイダのレート制限メッセージ
	Detail string `json:"detail,omitempty"` // 原因のエラーメッセージ
	Status *int   `json:"status,omitempty"` // 上流のHTTPステータス
	Raw    string `json:"raw,omitempty"`    // 解析できなかった本文の先頭部分
	Ticker string `json:"ticker,omitempty"`
}
