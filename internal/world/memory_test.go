package world

import (
	"testing"

	"github.com/google/uuid"

	"rogueblight/internal/descriptor"
	"rogueblight/internal/entity"
)

func TestMemory_AddAndLookup(t *testing.T) {
	w := NewMemory("overworld")
	tree := entity.NewBasicType("tree")
	rock := entity.NewBasicType("boulder")

	first, err := tree.Create(descriptor.Object{"type": "tree"}, w)
	if err != nil {
		t.Fatalf("创建实体失败: %v", err)
	}
	if _, err := rock.Create(descriptor.Object{"type": "boulder"}, w); err != nil {
		t.Fatalf("创建实体失败: %v", err)
	}
	w.AddEntity(nil)

	if w.Len() != 2 {
		t.Fatalf("期望实体数量为2，实际为 %d", w.Len())
	}
	if w.Entities()[0] != first {
		t.Error("实体应按加入顺序保存")
	}

	found, ok := w.EntityByID(first.ID())
	if !ok || found != first {
		t.Error("期望按标识找到实体")
	}
	if _, ok := w.EntityByID(uuid.New()); ok {
		t.Error("不存在的标识不应找到实体")
	}

	if got := len(w.EntitiesByType("tree")); got != 1 {
		t.Errorf("期望 tree 实体数量为1，实际为 %d", got)
	}
	if w.Name() != "overworld" {
		t.Errorf("期望世界名称为 overworld，实际为 %s", w.Name())
	}
}
