package main

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"

	"github.com/amonks/td/internal/testsupport"
)

func TestMenuOnTerminal(t *testing.T) {
	tdPath := testsupport.BuildTD(t)
	workDir := t.TempDir()
	home := testsupport.SetupTestHome(t)

	cmd := exec.Command(tdPath, "menu")
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+home, "NO_COLOR=1")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Fatalf("start pty: %v", err)
	}
	defer ptmx.Close()

	output := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		reader := bufio.NewReader(ptmx)
		for {
			line, err := reader.ReadString('\n')
			buf.WriteString(line)
			if strings.Contains(line, "Thank you for using Todo List Manager!") || err != nil {
				output <- buf.String()
				return
			}
		}
	}()

	for _, answer := range []string{"1", "Buy milk", "", "3", "", "9"} {
		if _, err := ptmx.Write([]byte(answer + "\n")); err != nil {
			t.Fatalf("write %q: %v", answer, err)
		}
	}

	select {
	case out := <-output:
		for _, want := range []string{
			"=== MAIN MENU ===",
			"Todo created successfully with ID: 1",
			"Saving todos before exit...",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	case <-time.After(10 * time.Second):
		cmd.Process.Kill()
		t.Fatal("menu did not exit")
	}

	if err := cmd.Wait(); err != nil {
		t.Fatalf("menu exited with error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workDir, "data", "todos.dat")); err != nil {
		t.Errorf("expected data file to be saved: %v", err)
	}
}
