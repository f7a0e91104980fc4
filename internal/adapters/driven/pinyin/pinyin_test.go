package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterator_Transliterate(t *testing.T) {
	tr := New()

	assert.Equal(t, []string{"zhong", "xin"}, tr.Transliterate("中心"))
	assert.Equal(t, []string{"bei", "jing"}, tr.Transliterate("北京"))
}

func TestTransliterator_NonHanInput(t *testing.T) {
	tr := New()

	assert.Nil(t, tr.Transliterate("hello"))
	assert.Nil(t, tr.Transliterate(""))
}

func TestTransliterator_MixedInput(t *testing.T) {
	tr := New()

	// Latin runs contribute no tokens.
	assert.Equal(t, []string{"zhong", "xin"}, tr.Transliterate("docs中心v2"))
}

func TestNoop(t *testing.T) {
	assert.Nil(t, Noop{}.Transliterate("中心"))
	assert.Nil(t, Noop{}.Transliterate("hello"))
}
