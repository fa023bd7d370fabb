// Package errors はリサンプリング処理全体のエラーハンドリングと警告システムを提供します。
// scikit-learnの警告・例外システムにインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex sync.Mutex
	// デフォルトのハンドラは標準エラー出力にログを出す
	defaultWarningHandler = func(w error) {
		log.Printf("imbalance-Warning: %v\n", w)
	}
	warningHandler = defaultWarningHandler
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、UnratedClassWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
//
// nilを渡すとデフォルトのハンドラに戻ります。
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	if handler == nil {
		handler = defaultWarningHandler
	}
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	warningHandler(w)
}

// ===========================================================================
//
//	リサンプリング固有の警告型
//
// ===========================================================================

// UnratedClassWarning はクラス別の比率指定に含まれないクラスが存在する場合の警告です。
// これらのクラスはオーバーサンプリングの対象外となり、そのまま残ります。
type UnratedClassWarning struct {
	Labels []string
}

func (w *UnratedClassWarning) Error() string {
	return fmt.Sprintf("classes %v have no ratio in the per-class mapping and will not be oversampled", w.Labels)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UnratedClassWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Strs("labels", w.Labels).
		Str("type", "UnratedClassWarning")
}

// NewUnratedClassWarning は新しいUnratedClassWarningを作成します。
func NewUnratedClassWarning(labels []string) *UnratedClassWarning {
	return &UnratedClassWarning{Labels: labels}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ValidationKind は入力検証エラーの分類です。
type ValidationKind int

const (
	// LengthMismatch はX, y, propsの長さが揃っていないことを示します。
	LengthMismatch ValidationKind = iota
	// EmptyInput はXまたはyが空であることを示します。
	EmptyInput
	// UnsupportedType は要素型やコンテナが扱えないことを示します。
	UnsupportedType
)

func (k ValidationKind) String() string {
	switch k {
	case LengthMismatch:
		return "length mismatch"
	case EmptyInput:
		return "empty input"
	case UnsupportedType:
		return "unsupported element type"
	default:
		return "unknown"
	}
}

// ValidationError は入力データの検証に失敗した場合のエラーです。
// Kindにより長さ不一致・空入力・非対応型を区別します。
type ValidationError struct {
	Kind      ValidationKind
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("imbalance: validation failed for '%s' (%s): %s (got: %v)", e.ParamName, e.Kind, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("kind", e.Kind.String()).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は長さ不一致のValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	return NewInputValidationError(LengthMismatch, param, reason, value)
}

// NewInputValidationError は指定した種類のValidationErrorを作成し、スタックトレースを付与します。
func NewInputValidationError(kind ValidationKind, param, reason string, value interface{}) error {
	err := &ValidationError{Kind: kind, ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// InvalidConfigurationError はリサンプラーの設定値（比率など）が不正な場合のエラーです。
// データに触れる前に送出されます。
type InvalidConfigurationError struct {
	Param  string
	Reason string
	Value  interface{}
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("imbalance: invalid configuration '%s': %s (got: %v)", e.Param, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param", e.Param).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidConfigurationError")
}

// NewInvalidConfigurationError は新しいInvalidConfigurationErrorを作成し、スタックトレースを付与します。
func NewInvalidConfigurationError(param, reason string, value interface{}) error {
	err := &InvalidConfigurationError{Param: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// InternalInvariantError は内部の整合性が崩れた場合のエラーです。
// ユーザー入力ではなく実装上の欠陥を示します。
type InternalInvariantError struct {
	Op      string
	Message string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("imbalance: %s: internal invariant violated: %s", e.Op, e.Message)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InternalInvariantError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "InternalInvariantError")
}

// NewInternalInvariantError は新しいInternalInvariantErrorを作成し、スタックトレースを付与します。
func NewInternalInvariantError(op, message string) error {
	err := &InternalInvariantError{Op: op, Message: message}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("imbalance: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("imbalance: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrUnknownResampler は未登録のリサンプラー名が指定された場合のエラーです。
	ErrUnknownResampler = New("unknown resampler")
)
