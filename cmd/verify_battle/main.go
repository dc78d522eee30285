// 战斗验证工具：以固定步长跑完整场战役并打印战报
// 固定 dt 保证每次运行结果完全一致，便于回归对比
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/castlewar/pkg/battle"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/types"
)

var (
	verbose    = flag.Bool("verbose", false, "显示每秒战况")
	maxSeconds = flag.Float64("max-seconds", 600, "模拟时长上限（秒）")
	step       = flag.Float64("step", 0.05, "固定步长（秒）")
)

func main() {
	flag.Parse()

	if *step <= 0 {
		log.Fatal("[VerifyBattle] step must be positive")
	}

	b := battle.New(nil, nil, nil)
	log.Printf("[VerifyBattle] battle %s | castle %d | coins %d",
		b.ID(), b.CastleHealth(), b.Coins())

	nextBuy := types.UnitSword
	nextStatus := 0.0

	for b.Elapsed() < *maxSeconds && !b.IsGameOver() {
		b.Update(*step)

		// 脚本策略：有钱就买，三个兵种轮换
		if b.BuyUnit(nextBuy) == nil {
			nextBuy = (nextBuy + 1) % types.UnitTypeCount
		}

		if *verbose && b.Elapsed() >= nextStatus {
			log.Printf("[VerifyBattle] t=%.1fs wave %d | coins %d | castle %d | units %d vs %d",
				b.Elapsed(), b.CurrentWave(), b.Coins(), b.CastleHealth(),
				b.PlayerUnitCount(), b.EnemyUnitCount())
			nextStatus += 1.0
		}
	}

	report := b.Report()
	printReport(report)

	if !b.IsGameOver() {
		log.Printf("[VerifyBattle] FAIL: battle did not finish within %.0fs", *maxSeconds)
		os.Exit(1)
	}
	if !report.Victory {
		log.Printf("[VerifyBattle] FAIL: castle fell on wave %d", b.CurrentWave())
		os.Exit(1)
	}
	log.Printf("[VerifyBattle] PASS: campaign won in %.1fs", report.Elapsed)
}

func printReport(r battle.Report) {
	fmt.Println("==== battle report ====")
	fmt.Printf("battle:        %s\n", r.BattleID)
	fmt.Printf("victory:       %v\n", r.Victory)
	fmt.Printf("waves cleared: %d / %d\n", r.WavesCleared, config.DefaultCampaignConfig().TotalWaves())
	fmt.Printf("kills:         %d\n", r.Kills)
	fmt.Printf("castle:        %d\n", r.CastleHealth)
	fmt.Printf("coins:         %d (earned %d, spent %d)\n", r.Coins, r.CoinsEarned, r.CoinsSpent)
	fmt.Printf("elapsed:       %.1fs\n", r.Elapsed)
}
