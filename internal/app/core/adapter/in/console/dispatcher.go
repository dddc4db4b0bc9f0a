// Package console 以文字選單驅動帳本
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-teller/internal/app/core/domain"
	"github.com/JoeShih716/go-teller/internal/app/core/usecase"
	"github.com/JoeShih716/go-teller/pkg/logging"
)

// Option 選單選項
type Option int

const (
	OptionDeposit Option = iota + 1
	OptionWithdraw
	OptionBalance
	OptionHistory
	OptionExit
)

const menu = `=== Banking System ===
1. Deposit money
2. Withdraw money
3. Check balance
4. Show transaction history
5. Exit
Select an option: `

// 使用者看到的訊息
const (
	msgMalformed    = "Error: Invalid input. Enter a numeric value."
	msgInvalidOpt   = "Error: Invalid option! Please select a valid option."
	msgInvalidAmt   = "Error: Invalid amount. Must be greater than 0"
	msgInsufficient = "Error: Insufficient funds."
	msgGoodbye      = "Exiting the banking system. Goodbye!"
)

// 輸入限制，超出範圍視為 malformed input
const (
	// maxLineBytes 單行輸入上限，超過的部分整行丟棄
	maxLineBytes = 4096
	// maxAmountExponent 金額指數的絕對值上限 (1e18 / 1e-18)
	maxAmountExponent = 18
	// maxAmountDigits 金額有效位數上限
	maxAmountDigits = 38
)

// Dispatcher 讀取選項與金額，呼叫 CoreUseCase 並輸出結果
// 本身不持有任何帳務狀態
type Dispatcher struct {
	core   *usecase.CoreUseCase
	in     *bufio.Reader
	out    io.Writer
	logger *logging.Logger
}

// NewDispatcher 建立 Dispatcher
//
// 參數:
//
//	core: 核心業務邏輯
//	in: 以行為單位的輸入
//	out: 輸出
//	logger: 可為 nil
func NewDispatcher(core *usecase.CoreUseCase, in io.Reader, out io.Writer, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Dispatcher{
		core:   core,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.Named("console").With(zap.String("session", uuid.NewString())),
	}
}

// Run 選單迴圈，直到選擇離開或輸入結束 (EOF)
//
// 回傳:
//
//	error: 只有讀取或輸出本身失敗時才回傳；帳務錯誤都在迴圈內處理
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.print(menu)

		line, err := d.readLine()
		if errors.Is(err, io.EOF) {
			d.logger.Debug("input closed")
			return nil
		}
		if errors.Is(err, domain.ErrMalformedInput) {
			d.println(msgMalformed)
			continue
		}
		if err != nil {
			return err
		}

		option, err := ParseOption(line)
		if err != nil {
			d.println(msgMalformed)
			continue
		}

		exit, err := d.Dispatch(ctx, option)
		if errors.Is(err, io.EOF) {
			d.logger.Debug("input closed while reading amount")
			return nil
		}
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// Dispatch 執行單一選項，回傳是否要結束迴圈
func (d *Dispatcher) Dispatch(ctx context.Context, option Option) (bool, error) {
	switch option {
	case OptionDeposit:
		amount, err := d.readAmount("Enter amount to deposit: ")
		if err != nil {
			return false, err
		}
		balance, err := d.core.Deposit(ctx, amount)
		if err != nil {
			d.reportError(err)
			return false, nil
		}
		d.println(fmt.Sprintf("Successfully deposited $%s. New balance: $%s", amount, balance))

	case OptionWithdraw:
		amount, err := d.readAmount("Enter amount to withdraw: ")
		if err != nil {
			return false, err
		}
		balance, err := d.core.Withdraw(ctx, amount)
		if err != nil {
			d.reportError(err)
			return false, nil
		}
		d.println(fmt.Sprintf("Successfully withdrew $%s. New balance: $%s", amount, balance))

	case OptionBalance:
		d.println(fmt.Sprintf("Current balance: $%s", d.core.Balance(ctx)))

	case OptionHistory:
		d.println("Transaction History:")
		for _, line := range d.core.History(ctx) {
			d.println(line)
		}

	case OptionExit:
		d.println(msgGoodbye)
		return true, nil

	default:
		d.println(msgInvalidOpt)
	}
	return false, nil
}

// readAmount 提示並讀取金額，非數值時重新提示，不會自行猜測金額
func (d *Dispatcher) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		d.print(prompt)
		line, err := d.readLine()
		if err != nil && !errors.Is(err, domain.ErrMalformedInput) {
			return decimal.Zero, err
		}
		if err == nil {
			amount, perr := ParseAmount(line)
			if perr == nil {
				return amount, nil
			}
			err = perr
		}
		d.logger.Debug("malformed amount", zap.Error(err))
		d.println(msgMalformed)
	}
}

// readLine 讀取一行 (不含換行)
// 超過 maxLineBytes 的行會讀到換行為止後丟棄，回傳 ErrMalformedInput
func (d *Dispatcher) readLine() (string, error) {
	var (
		line    []byte
		read    int
		tooLong bool
	)
	for {
		chunk, err := d.in.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineBytes+1 {
				tooLong, line = true, nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if err != nil && read == 0 {
			return "", io.EOF
		}
		break
	}
	if tooLong {
		return "", fmt.Errorf("%w: line longer than %d bytes", domain.ErrMalformedInput, maxLineBytes)
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}

// reportError 將帳務錯誤轉成使用者訊息
func (d *Dispatcher) reportError(err error) {
	switch domain.KindOf(err) {
	case domain.ErrorKindInvalidAmount:
		d.println(msgInvalidAmt)
	case domain.ErrorKindInsufficientFunds:
		d.println(msgInsufficient)
	default:
		d.println("Error: " + err.Error())
	}
}

func (d *Dispatcher) print(s string) {
	_, _ = io.WriteString(d.out, s)
}

func (d *Dispatcher) println(s string) {
	_, _ = io.WriteString(d.out, s+"\n")
}

// ParseOption 解析選項，非整數回傳 ErrMalformedInput
// 範圍檢查交給 Dispatch (超出範圍是 invalid option 而不是 malformed)
func ParseOption(s string) (Option, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedInput, s)
	}
	return Option(n), nil
}

// ParseAmount 解析十進位金額，非數值回傳 ErrMalformedInput
// 正負號不在此檢查，由帳本回傳 ErrInvalidAmount
// 指數或位數超出範圍的金額 (例如 1e50000000) 同樣視為 malformed，
// 否則與餘額對齊小數位時會產生極大的整數
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedInput, s)
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: exponent out of range", domain.ErrMalformedInput)
	}
	if digits := len(strings.TrimPrefix(amount.Coefficient().String(), "-")); digits > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: too many digits", domain.ErrMalformedInput)
	}
	return amount, nil
}
