// Package metrics はクラス不均衡の度合いを測る指標を提供します。
// リサンプリング前後の分布を比較するために使用します。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Distribution はラベルごとの件数と割合。Labelsはyでの初出順
type Distribution[L comparable] struct {
	Labels      []L
	Counts      []int
	Proportions []float64
	Total       int
}

// ClassDistribution はyのクラス分布を計算する
func ClassDistribution[L comparable](y []L) Distribution[L] {
	index := make(map[L]int)
	var d Distribution[L]
	for _, label := range y {
		i, ok := index[label]
		if !ok {
			i = len(d.Labels)
			index[label] = i
			d.Labels = append(d.Labels, label)
			d.Counts = append(d.Counts, 0)
		}
		d.Counts[i]++
	}
	d.Total = len(y)

	d.Proportions = make([]float64, len(d.Counts))
	for i, c := range d.Counts {
		d.Proportions[i] = float64(c)
	}
	if d.Total > 0 {
		floats.Scale(1/float64(d.Total), d.Proportions)
	}
	return d
}

// Count はlabelの件数を返す。存在しない場合は0
func (d Distribution[L]) Count(label L) int {
	for i, l := range d.Labels {
		if l == label {
			return d.Counts[i]
		}
	}
	return 0
}

// ImbalanceRatio は多数派クラスと少数派クラスの件数比 N_max / N_min を計算する
// 完全に均衡していれば1.0
func ImbalanceRatio[L comparable](y []L) (float64, error) {
	d := ClassDistribution(y)
	if d.Total == 0 {
		return 0, errors.NewValueError("ImbalanceRatio", "empty label vector")
	}

	counts := make([]float64, len(d.Counts))
	for i, c := range d.Counts {
		counts[i] = float64(c)
	}
	return floats.Max(counts) / floats.Min(counts), nil
}

// BalanceEntropy は割合のシャノンエントロピーをlog(k)で正規化した値を返す
// kはクラス数。1.0で完全均衡、0に近いほど偏っている。クラスが1つなら1.0
func BalanceEntropy[L comparable](y []L) (float64, error) {
	d := ClassDistribution(y)
	if d.Total == 0 {
		return 0, errors.NewValueError("BalanceEntropy", "empty label vector")
	}

	k := len(d.Labels)
	if k == 1 {
		return 1.0, nil
	}
	return stat.Entropy(d.Proportions) / math.Log(float64(k)), nil
}
