package components

// WavePhase 波次推进阶段
type WavePhase int

const (
	// WavePhaseIdle 战斗开始前的初始阶段，首个 tick 即进入 Spawning
	WavePhaseIdle WavePhase = iota
	// WavePhaseSpawning 当前波次正在按间隔生成敌人
	WavePhaseSpawning
	// WavePhaseCleared 当前波次敌人已全部生成且全部被消灭（瞬态阶段，
	// 同一 tick 内结算奖励后进入下一波 Spawning 或 Victory）
	WavePhaseCleared
	// WavePhaseVictory 全部波次已清空，战役胜利
	WavePhaseVictory
)

// String 返回阶段名称（用于日志输出）
func (p WavePhase) String() string {
	switch p {
	case WavePhaseIdle:
		return "idle"
	case WavePhaseSpawning:
		return "spawning"
	case WavePhaseCleared:
		return "cleared"
	case WavePhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// WaveStateComponent 波次推进状态组件
// 存储波次状态机的全部状态，供 WaveSystem 使用
type WaveStateComponent struct {
	// Phase 当前阶段
	Phase WavePhase

	// WaveIndex 当前波次索引（0-based）
	WaveIndex int

	// SpawnedInWave 本波已生成的敌人数量
	SpawnedInWave int

	// SpawnTimer 生成计时器（秒）
	// 进入 Spawning 时清零，每 tick 累加，
	// 达到生成间隔且本波未生成满时生成一个敌人并清零
	SpawnTimer float64

	// TotalWaves 总波次数，从战役配置中读取
	TotalWaves int
}
