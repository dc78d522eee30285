// 无界面战斗模拟入口
// 用墙钟驱动战斗 tick，并由一个简单的脚本指挥官花费金币，
// 定期输出战况，战斗结束后打印战报
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gonewx/castlewar/pkg/battle"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/types"
)

func main() {
	unitConfigPath := flag.String("units", "", "兵种配置 YAML 路径（留空使用内置默认）")
	campaignPath := flag.String("campaign", "", "战役配置 YAML 路径（留空使用内置默认）")
	battleConfigPath := flag.String("battle", "", "战场配置 YAML 路径（留空使用内置默认）")
	flag.Parse()

	var (
		unitConfig   *config.UnitConfig
		campaign     *config.CampaignConfig
		battleConfig *config.BattleConfig
		err          error
	)

	if *unitConfigPath != "" {
		if unitConfig, err = config.LoadUnitConfig(*unitConfigPath); err != nil {
			log.Fatalf("[Main] %v", err)
		}
	}
	if *campaignPath != "" {
		if campaign, err = config.LoadCampaignConfig(*campaignPath); err != nil {
			log.Fatalf("[Main] %v", err)
		}
	}
	if *battleConfigPath != "" {
		if battleConfig, err = config.LoadBattleConfig(*battleConfigPath); err != nil {
			log.Fatalf("[Main] %v", err)
		}
	}

	b := battle.New(unitConfig, campaign, battleConfig)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	lastTick := time.Now()
	lastStatus := time.Now()

	for range ticker.C {
		now := time.Now()
		b.Update(now.Sub(lastTick).Seconds())
		lastTick = now

		commandTick(b)

		if now.Sub(lastStatus) >= time.Second {
			log.Printf("[Main] wave %d | coins %d | castle %d/%d | units %d vs %d",
				b.CurrentWave(), b.Coins(), b.CastleHealth(), b.MaxCastleHealth(),
				b.PlayerUnitCount(), b.EnemyUnitCount())
			for _, msg := range b.Messages() {
				log.Printf("[Main] >> %s", msg)
			}
			lastStatus = now
		}

		if b.IsGameOver() {
			break
		}
	}

	report := b.Report()
	outcome := "DEFEAT"
	if report.Victory {
		outcome = "VICTORY"
	}
	log.Printf("[Main] battle %s finished: %s | waves cleared %d | kills %d | castle %d | coins %d (earned %d, spent %d) | %.1fs",
		report.BattleID, outcome, report.WavesCleared, report.Kills,
		report.CastleHealth, report.Coins, report.CoinsEarned, report.CoinsSpent, report.Elapsed)
}

// commandTick 脚本指挥官：轮流生产三个兵种，富余时优先升级剑士
// 输入处理不在模拟范围内，指挥官只是演示用的自动驾驶
var nextBuy = types.UnitSword

func commandTick(b *battle.Battle) {
	if b.IsGameOver() {
		return
	}

	// 金币宽裕时先买升级
	if b.Coins() >= 60 {
		if _, err := b.UpgradeUnit(nextBuy); err == nil {
			return
		}
	}

	if err := b.BuyUnit(nextBuy); err == nil {
		nextBuy = (nextBuy + 1) % types.UnitTypeCount
	}
}
