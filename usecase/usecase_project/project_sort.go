package usecase_project

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
	"github.com/mozillazg/go-pinyin"
)

// pinyinSortKey 汉字转为拼音，其余字符转小写后原样保留
func pinyinSortKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.Is(unicode.Han, r) {
			if py := pinyin.LazyConvert(string(r), nil); len(py) > 0 {
				b.WriteString(py[0])
				continue
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func sortProjectsByName(projects []*domain_project.Project, descending bool) {
	keys := make(map[string]string, len(projects))
	for _, p := range projects {
		keys[p.ID] = pinyinSortKey(p.Name)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := keys[projects[i].ID], keys[projects[j].ID]
		if descending {
			return a > b
		}
		return a < b
	})
}
