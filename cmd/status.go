package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"

	"rogueblight/internal/common/errors"
)

// statusCmd shows registry and process status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "显示注册表和进程状态",
	RunE: func(cmd *cobra.Command, args []string) error {
		showStatus()
		fmt.Println()
		return showProcessStatus(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showProcessStatus 显示当前进程的资源占用
func showProcessStatus(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return errors.WrapError(errors.ErrCodeSystemError, "获取进程信息失败", err)
	}

	memInfo, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return errors.WrapError(errors.ErrCodeSystemError, "获取内存信息失败", err)
	}
	cpuPercent, err := proc.CPUPercentWithContext(ctx)
	if err != nil {
		return errors.WrapError(errors.ErrCodeSystemError, "获取CPU信息失败", err)
	}
	threads, _ := proc.NumThreadsWithContext(ctx)

	fmt.Println(sectionStyle.Render("进程状态"))
	fmt.Printf("  PID: %d\n", proc.Pid)
	fmt.Printf("  常驻内存: %.2f MB\n", float64(memInfo.RSS)/1024/1024)
	fmt.Printf("  虚拟内存: %.2f MB\n", float64(memInfo.VMS)/1024/1024)
	fmt.Printf("  CPU占用: %.2f%%\n", cpuPercent)
	fmt.Printf("  线程数: %d\n", threads)
	fmt.Printf("  世界实体数: %d\n", gameWorld.Len())
	return nil
}
