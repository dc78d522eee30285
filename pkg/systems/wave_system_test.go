package systems

import (
	"testing"

	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
)

// testCampaign 返回一个两波的小战役（每波 2 个敌人）
func testCampaign() *config.CampaignConfig {
	return &config.CampaignConfig{
		Name: "test",
		Waves: []config.WaveConfig{
			{Count: 2, BaseHealth: 40, BaseSpeed: 25, BaseDamage: 5, AttackRange: 15, AttackCooldown: 1.0},
			{Count: 2, BaseHealth: 60, BaseSpeed: 28, BaseDamage: 8, AttackRange: 15, AttackCooldown: 1.0},
		},
	}
}

// killAllEnemies 把场上所有敌人生命值清零（模拟被消灭）
func killAllEnemies(wave *WaveSystem) {
	for _, id := range LiveEnemyUnits(wave.entityManager) {
		healthOf(wave.entityManager, id).Current = 0
	}
}

// TestWaveStartsOnFirstTick 测试首个 tick 从 Idle 进入第一波并发出通知
func TestWaveStartsOnFirstTick(t *testing.T) {
	em, gs, cfg := newTestEnv()
	wave := NewWaveSystem(em, gs, testCampaign(), cfg)

	wave.Update(0.016)

	ws := wave.State()
	if ws.Phase != components.WavePhaseSpawning {
		t.Fatalf("Expected phase spawning after first tick, got %s", ws.Phase)
	}
	if ws.WaveIndex != 0 {
		t.Errorf("Expected wave index 0, got %d", ws.WaveIndex)
	}

	msgs := ActiveMessages(em)
	if len(msgs) != 1 || msgs[0] != "Wave 1 incoming!" {
		t.Errorf("Expected wave start notification, got %v", msgs)
	}
}

// TestWaveSpawnInterval 测试敌人按 1.2 秒间隔生成
func TestWaveSpawnInterval(t *testing.T) {
	em, gs, cfg := newTestEnv()
	wave := NewWaveSystem(em, gs, testCampaign(), cfg)

	wave.Update(0.016) // 进入第一波

	// 1.0 秒：未达到间隔，不生成
	wave.Update(1.0)
	if n := len(LiveEnemyUnits(em)); n != 0 {
		t.Errorf("No enemy should spawn before the interval, got %d", n)
	}

	// 再过 0.3 秒：累计 1.3 秒 >= 1.2，生成一个
	wave.Update(0.3)
	if n := len(LiveEnemyUnits(em)); n != 1 {
		t.Errorf("Expected 1 enemy after 1.3s, got %d", n)
	}
	if wave.State().SpawnedInWave != 1 {
		t.Errorf("Expected spawnedInWave 1, got %d", wave.State().SpawnedInWave)
	}

	// 生成后计时器清零：紧接着的小步长不会再生成
	wave.Update(0.1)
	if n := len(LiveEnemyUnits(em)); n != 1 {
		t.Errorf("Spawn timer should reset after spawning, got %d enemies", n)
	}
}

// TestWaveSpawnsAtMostOnePerTick 测试单个 tick 至多生成一个敌人
func TestWaveSpawnsAtMostOnePerTick(t *testing.T) {
	em, gs, cfg := newTestEnv()
	wave := NewWaveSystem(em, gs, testCampaign(), cfg)

	wave.Update(0.016)
	// 一个超大步长也只生成一个
	wave.Update(10.0)

	if n := len(LiveEnemyUnits(em)); n != 1 {
		t.Errorf("A single tick should spawn at most one enemy, got %d", n)
	}
}

// TestWaveSpawnPositionAndStats 测试敌人在战场右端按波次属性生成
func TestWaveSpawnPositionAndStats(t *testing.T) {
	em, gs, cfg := newTestEnv()
	campaign := testCampaign()
	wave := NewWaveSystem(em, gs, campaign, cfg)

	wave.Update(0.016)
	wave.Update(1.5)

	enemies := LiveEnemyUnits(em)
	if len(enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(enemies))
	}

	if h := healthOf(em, enemies[0]); h.Current != campaign.Waves[0].BaseHealth {
		t.Errorf("Enemy health should come from the wave config, got %f", h.Current)
	}
}

// TestWaveClearGrantsBountyAndAdvances 测试清波结算奖励并推进到下一波
func TestWaveClearGrantsBountyAndAdvances(t *testing.T) {
	em, gs, cfg := newTestEnv()
	wave := NewWaveSystem(em, gs, testCampaign(), cfg)

	wave.Update(0.016)
	// 生成第一波的全部 2 个敌人
	wave.Update(1.2)
	wave.Update(1.2)
	if wave.State().SpawnedInWave != 2 {
		t.Fatalf("Expected both enemies spawned, got %d", wave.State().SpawnedInWave)
	}

	// 波次未清空前不算清波
	coinsBefore := gs.Coins
	wave.Update(0.1)
	if gs.Coins != coinsBefore {
		t.Error("Bounty should not be granted while enemies are alive")
	}

	// 消灭全部敌人后：奖励 20 + 0*10 = 20，并进入第二波
	killAllEnemies(wave)
	wave.Update(0.1)

	if gs.Coins != coinsBefore+20 {
		t.Errorf("Expected +20 bounty for wave 1, got %d -> %d", coinsBefore, gs.Coins)
	}
	if gs.WavesCleared != 1 {
		t.Errorf("Expected 1 wave cleared, got %d", gs.WavesCleared)
	}

	ws := wave.State()
	if ws.Phase != components.WavePhaseSpawning {
		t.Fatalf("Expected next wave spawning, got %s", ws.Phase)
	}
	if ws.WaveIndex != 1 {
		t.Errorf("Expected wave index 1, got %d", ws.WaveIndex)
	}
	if ws.SpawnedInWave != 0 || ws.SpawnTimer != 0 {
		t.Errorf("Spawn counters should reset on wave start, got %d/%f",
			ws.SpawnedInWave, ws.SpawnTimer)
	}
}

// TestWaveSecondBountyScales 测试第二波清波奖励为 20 + 1*10 = 30
func TestWaveSecondBountyScales(t *testing.T) {
	em, gs, cfg := newTestEnv()
	wave := NewWaveSystem(em, gs, testCampaign(), cfg)

	wave.Update(0.016)
	// 第一波：生成并清空
	wave.Update(1.2)
	wave.Update(1.2)
	killAllEnemies(wave)
	wave.Update(0.1)

	// 第二波：生成并清空
	wave.Update(1.2)
	wave.Update(1.2)
	killAllEnemies(wave)
	coinsBefore := gs.Coins
	wave.Update(0.1)

	if gs.Coins != coinsBefore+30 {
		t.Errorf("Expected +30 bounty for wave 2, got %d -> %d", coinsBefore, gs.Coins)
	}
}

// TestWaveVictoryOnFinalClear 测试最后一波清空后战役胜利
func TestWaveVictoryOnFinalClear(t *testing.T) {
	em, gs, cfg := newTestEnv()
	campaign := &config.CampaignConfig{
		Waves: []config.WaveConfig{
			{Count: 1, BaseHealth: 40, BaseSpeed: 25, BaseDamage: 5, AttackRange: 15, AttackCooldown: 1.0},
		},
	}
	wave := NewWaveSystem(em, gs, campaign, cfg)

	wave.Update(0.016)
	wave.Update(1.2)
	killAllEnemies(wave)
	wave.Update(0.1)

	ws := wave.State()
	if ws.Phase != components.WavePhaseVictory {
		t.Fatalf("Expected victory phase, got %s", ws.Phase)
	}
	if !gs.IsGameOver {
		t.Error("Campaign victory should end the game")
	}

	// 胜利后再 tick 不应有任何变化
	coins := gs.Coins
	wave.Update(1.0)
	if gs.Coins != coins {
		t.Error("Victory phase ticks should be no-ops")
	}
	if len(LiveEnemyUnits(em)) != 0 {
		t.Error("No enemies should spawn after victory")
	}
}
