package message

import (
	"strings"

	"github.com/iancoleman/strcase"
)

type (
	Topic              string
	TopicBuilderOption func(*topicBuilder)

	topicBuilder struct {
		baseName   string
		domain     string
		aggregate  string
		customTags []string
	}
)

// NewTopic builds names like `base.session-domain.token-aggregate.tag`.
func NewTopic(baseName string, opts ...TopicBuilderOption) Topic {
	builder := &topicBuilder{baseName: baseName}
	for _, opt := range opts {
		opt(builder)
	}

	return builder.Build()
}

func (b *topicBuilder) Build() Topic {
	const separator = '.'

	sb := strings.Builder{}
	sb.WriteString(b.baseName)

	addTagIfNotEmpty := func(tag string) {
		if tag != "" {
			if sb.Len() > 0 {
				sb.WriteRune(separator)
			}
			sb.WriteString(tag)
		}
	}

	addTagIfNotEmpty(b.domain)
	addTagIfNotEmpty(b.aggregate)
	for _, tag := range b.customTags {
		addTagIfNotEmpty(tag)
	}

	return Topic(sb.String())
}

func WithTopicDomainName(name string) TopicBuilderOption {
	return func(builder *topicBuilder) {
		builder.domain = strcase.ToKebab(name) + "-domain"
	}
}

func WithTopicAggregateName(name string) TopicBuilderOption {
	return func(builder *topicBuilder) {
		builder.aggregate = strcase.ToKebab(name) + "-aggregate"
	}
}

func WithTopicCustomTags(tags ...string) TopicBuilderOption {
	return func(builder *topicBuilder) {
		for _, tag := range tags {
			builder.customTags = append(builder.customTags, strcase.ToKebab(tag))
		}
	}
}
