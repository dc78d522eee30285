package entities

import (
	"testing"

	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/types"
)

// TestCreatePlayerUnit 测试玩家单位的组件组装
func TestCreatePlayerUnit(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.UnitStats{Health: 60, Speed: 40, Damage: 8, AttackRange: 15, AttackCooldown: 1.0}

	id := CreatePlayerUnit(em, types.UnitSword, stats, 60)

	unit, ok := ecs.GetComponent[*components.UnitComponent](em, id)
	if !ok {
		t.Fatal("player unit should have UnitComponent")
	}
	if !unit.IsPlayer {
		t.Error("player unit should be on the player side")
	}
	if unit.Type != types.UnitSword {
		t.Errorf("Expected unit type sword, got %s", unit.Type)
	}
	if unit.WaveIndex != -1 {
		t.Errorf("Player unit wave index should be -1, got %d", unit.WaveIndex)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 60 {
		t.Errorf("Expected spawn at 60, got %f", pos.X)
	}

	move, _ := ecs.GetComponent[*components.MovementComponent](em, id)
	if move.Direction != 1 {
		t.Errorf("Player unit should move right, got direction %f", move.Direction)
	}
	if move.Speed != 40 {
		t.Errorf("Expected speed 40, got %f", move.Speed)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.Current != 60 || health.Max != 60 {
		t.Errorf("Expected full health 60/60, got %f/%f", health.Current, health.Max)
	}

	attack, _ := ecs.GetComponent[*components.AttackComponent](em, id)
	if attack.Damage != 8 || attack.Range != 15 || attack.Cooldown != 1.0 {
		t.Errorf("Attack stats mismatch: %+v", attack)
	}
	if attack.CooldownTimer != 0 {
		t.Errorf("Fresh unit should be ready to attack, got timer %f", attack.CooldownTimer)
	}
}

// TestCreateEnemyUnit 测试敌方单位的组件组装
func TestCreateEnemyUnit(t *testing.T) {
	em := ecs.NewEntityManager()
	wave := config.WaveConfig{
		Count: 3, BaseHealth: 40, BaseSpeed: 25, BaseDamage: 5,
		AttackRange: 15, AttackCooldown: 1.0,
	}

	id := CreateEnemyUnit(em, wave, 2, 800)

	unit, _ := ecs.GetComponent[*components.UnitComponent](em, id)
	if unit.IsPlayer {
		t.Error("enemy unit should not be on the player side")
	}
	if unit.WaveIndex != 2 {
		t.Errorf("Expected wave index 2, got %d", unit.WaveIndex)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 800 {
		t.Errorf("Enemy should spawn at the right edge 800, got %f", pos.X)
	}

	move, _ := ecs.GetComponent[*components.MovementComponent](em, id)
	if move.Direction != -1 {
		t.Errorf("Enemy unit should move left, got direction %f", move.Direction)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.Current != 40 {
		t.Errorf("Expected enemy health 40, got %f", health.Current)
	}
}

// TestCreateStatusMessage 测试状态消息实体
func TestCreateStatusMessage(t *testing.T) {
	em := ecs.NewEntityManager()
	id := CreateStatusMessage(em, "Wave 1 incoming!", 3.0)

	msg, ok := ecs.GetComponent[*components.StatusMessageComponent](em, id)
	if !ok {
		t.Fatal("message entity should have StatusMessageComponent")
	}
	if msg.Text != "Wave 1 incoming!" {
		t.Errorf("Unexpected message text %q", msg.Text)
	}
	if msg.Remaining != 3.0 {
		t.Errorf("Expected remaining 3.0, got %f", msg.Remaining)
	}
}

// TestCreateWaveState 测试波次状态实体初始阶段
func TestCreateWaveState(t *testing.T) {
	em := ecs.NewEntityManager()
	id := CreateWaveState(em, 3)

	ws, ok := ecs.GetComponent[*components.WaveStateComponent](em, id)
	if !ok {
		t.Fatal("wave state entity should have WaveStateComponent")
	}
	if ws.Phase != components.WavePhaseIdle {
		t.Errorf("Expected initial phase idle, got %s", ws.Phase)
	}
	if ws.TotalWaves != 3 {
		t.Errorf("Expected 3 total waves, got %d", ws.TotalWaves)
	}
}
