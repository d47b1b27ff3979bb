package game

import (
	"math/rand"
	"time"
)

// RandomSource 随机数来源
// 生产环境使用未固定种子的 math/rand，测试可注入确定序列
type RandomSource interface {
	// Float64 返回 [0, 1) 的均匀随机数
	Float64() float64
	// Intn 返回 [0, n) 的均匀随机整数
	Intn(n int) int
}

// NewRandomSource 创建以当前时间为种子的随机数来源
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandRange 返回 [min, max) 的均匀随机数
func RandRange(rng RandomSource, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandIntRange 返回 [min, max] 的均匀随机整数
func RandIntRange(rng RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Chance 以概率 p 返回 true
func Chance(rng RandomSource, p float64) bool {
	return rng.Float64() < p
}
