// Package model defines the interfaces shared by every resampler and by the
// containers they operate on.
package model

// Features はサンプル（行）単位でアクセスできる特徴量コンテナ
// 要素型はリサンプラーからは見えない
type Features interface {
	// Len はサンプル数を返す
	Len() int
	// Select は指定したインデックス順に行を取り出した新しいコンテナを返す
	// インデックスの重複を許す
	Select(indices []int) (Features, error)
}

// Column はサンプルに紐づく補助属性列（sample_weight など）
type Column interface {
	// Len は要素数を返す
	Len() int
	// Select は指定したインデックス順に要素を取り出した新しい列を返す
	Select(indices []int) (Column, error)
}

// Properties は属性名から列へのマップ。nil と空マップは同じ意味を持つ
type Properties map[string]Column

// Resampler はX, y, propsを整列を保ったまま再サンプリングするインターフェース
// scikit-learn (imbalanced-learn) の fit_resample と互換
type Resampler[L comparable] interface {
	// FitResample は再サンプリングしたX, y, propsを返す
	// 失敗時は部分的な結果を返さない
	FitResample(X Features, y []L, props Properties) (Features, []L, Properties, error)
}

// ParameterGetter is the interface for resamplers that expose their configuration.
type ParameterGetter interface {
	// GetParams returns the resampler's hyperparameters.
	GetParams() map[string]interface{}
}
