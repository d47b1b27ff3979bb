package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/watchninja/pkg/utils"
)

// 存储路径常量
const (
	bestScoreObject   = "scores"
	bestScoreProperty = "best"
)

// BestScoreManager 最高分持久化
//
// 存储内容是一个纯数字。存储不可用或内容损坏时一律视为"没有纪录"，
// 不会向调用方返回错误。
type BestScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	best         int
	hasBest      bool
}

// OpenStorage 打开 gdata 存储
// 失败时返回 nil，调用方进入降级模式，游戏仍可运行
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[BestScoreManager] Warning: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[BestScoreManager] Storage path: %s", path)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[BestScoreManager] Warning: gdata unavailable: %v (scores will not persist)", err)
		return nil
	}
	return manager
}

// NewBestScoreManager 创建最高分管理器并尝试加载已有纪录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewBestScoreManager(gdataManager *gdata.Manager) *BestScoreManager {
	m := &BestScoreManager{gdataManager: gdataManager}
	if err := m.load(); err != nil {
		// 加载失败不是致命错误，视为没有纪录
		log.Printf("[BestScoreManager] Warning: %v (treating as no record)", err)
	}
	return m
}

// load 从 gdata 读取纪录
func (m *BestScoreManager) load() error {
	m.best, m.hasBest = 0, false

	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(bestScoreObject, bestScoreProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(bestScoreObject, bestScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("corrupted best score: empty record")
	}

	var score int
	if err := yaml.Unmarshal(data, &score); err != nil {
		return fmt.Errorf("corrupted best score %q: %w", string(data), err)
	}

	m.best, m.hasBest = score, true
	log.Printf("[BestScoreManager] Best score loaded: %d", score)
	return nil
}

// LoadBestScore 返回最高分；没有纪录时 ok 为 false
func (m *BestScoreManager) LoadBestScore() (score int, ok bool) {
	return m.best, m.hasBest
}

// SaveBestScore 提交本局结果，刷新纪录时返回 true
// 写入失败只记录日志，内存中的纪录仍然更新
func (m *BestScoreManager) SaveBestScore(score int) bool {
	if m.hasBest && score <= m.best {
		return false
	}

	m.best, m.hasBest = score, true

	if m.gdataManager == nil {
		return true
	}

	data, err := yaml.Marshal(score)
	if err != nil {
		log.Printf("[BestScoreManager] Warning: failed to marshal best score: %v", err)
		return true
	}
	if err := m.gdataManager.SaveObjectProp(bestScoreObject, bestScoreProperty, data); err != nil {
		log.Printf("[BestScoreManager] Warning: failed to save best score: %v", err)
		return true
	}

	log.Printf("[BestScoreManager] New best score saved: %d", score)
	return true
}
