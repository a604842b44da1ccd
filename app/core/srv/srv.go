package srv

type Srv struct {
	ai *AI
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	s := &Srv{}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		a, err := SetupAI(cfg)
		if err != nil {
			panic(err)
		}
		s.ai = a
	}
}

// ApplyAIDriver 直接注入已构建的驱动，测试替身走这里
func ApplyAIDriver(embed EmbeddingAI, complete CompletionAI) ApplyFunc {
	return func(s *Srv) {
		s.ai = &AI{
			EmbeddingAI:  embed,
			CompletionAI: complete,
		}
	}
}

func (s *Srv) AI() AIDriver {
	return s.ai
}
