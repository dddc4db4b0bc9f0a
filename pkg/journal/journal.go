package journal

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"sync"
)

// 自己定義常用的權限常量
const (
	// rw------- (只有擁有者可讀寫) - 適用於含金額的稽核檔
	FileModePrivate fs.FileMode = 0600
)

// syncer 可以強制刷入硬碟的 writer (例如 *os.File)
type syncer interface {
	Sync() error
}

// Journal 只能追加的稽核日誌，每筆一行 JSON
// 不提供讀回功能，帳本狀態不會因此跨程序保存
type Journal struct {
	w  io.Writer
	mu sync.Mutex
}

// Open 開啟或建立一個稽核檔案
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func Open(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FileModePrivate)
	if err != nil {
		return nil, err
	}
	return &Journal{w: file}, nil
}

// New 包裝任意 writer (測試時可用 bytes.Buffer)
func New(w io.Writer) *Journal {
	return &Journal{w: w}
}

// Write 寫入一筆資料，若底層支援 Sync 則同時刷入硬碟
func (j *Journal) Write(v any) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := json.NewEncoder(j.w).Encode(v); err != nil {
		return err
	}
	if s, ok := j.w.(syncer); ok {
		return s.Sync()
	}
	return nil
}

// Close 關閉底層檔案 (若可關閉)
func (j *Journal) Close() error {
	if c, ok := j.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
