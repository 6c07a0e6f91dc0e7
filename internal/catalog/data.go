package catalog

// builtinDescriptors returns the full static provider set. Only the
// Claude-family providers are probed live; the rest are integration
// targets surfaced to the wizard for key collection.
func builtinDescriptors() []Descriptor {
	return []Descriptor{
		// Text generation.
		{ID: "zai", Name: "Z.ai", Description: "Free tier available, integrated AI assistant", Category: CategoryText, Pricing: "Free tier available", Website: "https://z.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"quote generation", "text analysis", "prompt generation"}},
		{ID: "openai", Name: "OpenAI GPT", Description: "Advanced language model for text generation", Category: CategoryText, Pricing: "$0.01/1K tokens", Website: "https://openai.com", RequiresAPIKey: true, IsFree: false, CostTier: CostTierLowCost, Capabilities: []string{"quote generation", "text analysis", "prompt generation", "content creation"}},
		{ID: "anthropic", Name: "Anthropic Claude", Description: "Constitutional AI for safe, helpful text generation", Category: CategoryText, Pricing: "$0.015/1K tokens", Website: "https://anthropic.com", RequiresAPIKey: true, IsFree: false, CostTier: CostTierLowCost, Capabilities: []string{"quote generation", "text analysis", "content creation"}},
		{ID: "google", Name: "Google Gemini", Description: "Google's advanced AI model", Category: CategoryText, Pricing: "Free tier available", Website: "https://ai.google", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"quote generation", "text analysis", "content creation"}},
		{ID: "cohere", Name: "Cohere", Description: "Large language model for enterprise applications", Category: CategoryText, Pricing: "Free tier + $5/month", Website: "https://cohere.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"quote generation", "text analysis", "content generation"}},
		{ID: "huggingface", Name: "Hugging Face", Description: "Open-source models and datasets", Category: CategoryText, Pricing: "Free open-source models", Website: "https://huggingface.co", RequiresAPIKey: false, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"quote generation", "text analysis", "content creation"}},
		{ID: "perplexity", Name: "Perplexity AI", Description: "AI-powered search and answer engine", Category: CategoryText, Pricing: "Free tier + $20/month", Website: "https://perplexity.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"text analysis", "content creation", "research"}},
		{ID: "mistral", Name: "Mistral AI", Description: "European AI company with open-source models", Category: CategoryText, Pricing: "Free tier + pay-per-use", Website: "https://mistral.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"quote generation", "text analysis", "content creation"}},
		{ID: "together", Name: "Together AI", Description: "Open-source AI models with easy API access", Category: CategoryText, Pricing: "Free tier + $1/month", Website: "https://together.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"quote generation", "text analysis", "content creation"}},
		{ID: "groq", Name: "Groq", Description: "Ultra-fast AI inference with LPU technology", Category: CategoryText, Pricing: "Free tier + pay-per-use", Website: "https://groq.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"quote generation", "text analysis", "real-time processing"}},

		// Image generation.
		{ID: "zai-image", Name: "Z.ai Images", Description: "AI image generation with Z.ai", Category: CategoryImage, Pricing: "Free tier available", Website: "https://z.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"background generation", "image creation", "style transfer"}},
		{ID: "openai-dalle", Name: "OpenAI DALL-E", Description: "Advanced image generation from text descriptions", Category: CategoryImage, Pricing: "$0.02-$0.08 per image", Website: "https://openai.com/dall-e-2", RequiresAPIKey: true, IsFree: false, CostTier: CostTierLowCost, Capabilities: []string{"background generation", "image creation", "art generation"}},
		{ID: "stability", Name: "Stability AI", Description: "Stable Diffusion image generation", Category: CategoryImage, Pricing: "Free tier + $10/month API", Website: "https://stability.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"background generation", "image creation", "art generation"}},
		{ID: "replicate-image", Name: "Replicate", Description: "Run and fine-tune AI models", Category: CategoryImage, Pricing: "Pay-per-use, varies by model", Website: "https://replicate.com", RequiresAPIKey: true, IsFree: false, CostTier: CostTierLowCost, Capabilities: []string{"background generation", "image creation", "style transfer"}},
		{ID: "midjourney", Name: "Midjourney", Description: "High-quality artistic image generation", Category: CategoryImage, Pricing: "Basic plan from $10/month", Website: "https://midjourney.com", RequiresAPIKey: true, IsFree: false, CostTier: CostTierLowCost, Capabilities: []string{"background generation", "art generation", "style transfer"}},
		{ID: "leonardo", Name: "Leonardo.AI", Description: "AI image generation and training", Category: CategoryImage, Pricing: "Free tier + $12/month", Website: "https://leonardo.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"background generation", "image creation", "art generation"}},
		{ID: "playground", Name: "Playground AI", Description: "Create and edit images with AI", Category: CategoryImage, Pricing: "Free tier + $15/month", Website: "https://playgroundai.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"background generation", "image creation", "image editing"}},
		{ID: "getimg", Name: "GetImg.ai", Description: "AI image generation with multiple models", Category: CategoryImage, Pricing: "Free 100 images/month", Website: "https://getimg.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"background generation", "image creation", "art generation"}},
		{ID: "seaart", Name: "SeaArt.ai", Description: "AI art generation with community features", Category: CategoryImage, Pricing: "Free tier + credits", Website: "https://seaart.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"background generation", "art generation", "style transfer"}},
		{ID: "pixart", Name: "PixArt", Description: "Open-source image generation model", Category: CategoryImage, Pricing: "Free open-source", Website: "https://github.com/PixArt-alpha/PixArt-alpha", RequiresAPIKey: false, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"background generation", "image creation", "art generation"}},
		{ID: "starryai", Name: "StarryAI", Description: "AI art generation with mobile app", Category: CategoryImage, Pricing: "Free tier + $5/month", Website: "https://starryai.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"background generation", "art generation", "mobile creation"}},
		{ID: "dreamstudio", Name: "DreamStudio", Description: "Stability AI's official interface", Category: CategoryImage, Pricing: "Free credits + paid", Website: "https://dreamstudio.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"background generation", "image creation", "art generation"}},

		// Music generation.
		{ID: "elevenlabs", Name: "ElevenLabs", Description: "Voice synthesis and music generation", Category: CategoryMusic, Pricing: "Free tier + $5/month", Website: "https://elevenlabs.io", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "voice synthesis", "sound design"}},
		{ID: "suno", Name: "Suno", Description: "AI music generation and composition", Category: CategoryMusic, Pricing: "Free tier + paid commercial", Website: "https://suno.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "composition", "audio production"}},
		{ID: "udio", Name: "Udio", Description: "AI music creation platform", Category: CategoryMusic, Pricing: "Free tier + beta access", Website: "https://udio.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "composition", "audio production"}},
		{ID: "mubert", Name: "Mubert", Description: "AI music generation for content creators", Category: CategoryMusic, Pricing: "Free tier + $14/month", Website: "https://mubert.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"music generation", "ambient music", "background music"}},
		{ID: "soundraw", Name: "Soundraw", Description: "AI-generated royalty-free music", Category: CategoryMusic, Pricing: "Free tier + $16.99/month", Website: "https://soundraw.io", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"music generation", "royalty-free music", "background music"}},
		{ID: "beatoven", Name: "Beatoven.ai", Description: "AI music composition for videos", Category: CategoryMusic, Pricing: "Free tier + $6/month", Website: "https://beatoven.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "video scoring", "composition"}},
		{ID: "aimusic", Name: "AIMusic", Description: "AI music generation with various genres", Category: CategoryMusic, Pricing: "Free tier + $9/month", Website: "https://aimusic.one", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "genre variety", "composition"}},
		{ID: "loudly", Name: "Loudly", Description: "AI music generation for creators", Category: CategoryMusic, Pricing: "Free tier + paid", Website: "https://loudly.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "content creation", "royalty-free"}},
		{ID: "audioalter", Name: "AudioAlter", Description: "AI audio processing and music generation", Category: CategoryMusic, Pricing: "Free tier + credits", Website: "https://audioalter.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "audio processing", "sound design"}},
		{ID: "voicemod", Name: "Voicemod Studio", Description: "AI voice changing and music creation", Category: CategoryMusic, Pricing: "Free tier + $10/month", Website: "https://voicemod.net", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"music generation", "voice synthesis", "audio effects"}},

		// Video generation.
		{ID: "runway", Name: "Runway ML", Description: "AI video generation and editing tools", Category: CategoryVideo, Pricing: "Free tier + $15/month", Website: "https://runwayml.com", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"video generation", "video editing", "special effects"}},
		{ID: "pika", Name: "Pika Labs", Description: "AI video generation from text and images", Category: CategoryVideo, Pricing: "Free tier + paid higher quality", Website: "https://pika.art", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "animation", "text-to-video"}},
		{ID: "heygen", Name: "HeyGen", Description: "AI video generation with avatars", Category: CategoryVideo, Pricing: "Free trial + $29/month", Website: "https://heygen.com", RequiresAPIKey: true, IsFree: false, CostTier: CostTierPaid, Capabilities: []string{"video generation", "avatar creation", "presentation videos"}},
		{ID: "synthesia", Name: "Synthesia", Description: "AI video generation with AI avatars", Category: CategoryVideo, Pricing: "Free trial + $22/month", Website: "https://synthesia.io", RequiresAPIKey: true, IsFree: false, CostTier: CostTierPaid, Capabilities: []string{"video generation", "avatar creation", "training videos"}},
		{ID: "invideo", Name: "InVideo AI", Description: "AI-powered video creation platform", Category: CategoryVideo, Pricing: "Free tier + $20/month", Website: "https://invideo.io", RequiresAPIKey: true, IsFree: true, CostTier: CostTierLowCost, Capabilities: []string{"video generation", "video editing", "content creation"}},
		{ID: "luma", Name: "Luma Labs", Description: "AI video generation and Dream Machine", Category: CategoryVideo, Pricing: "Free tier + paid plans", Website: "https://lumalabs.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "animation", "special effects"}},
		{ID: "kaiber", Name: "Kaiber", Description: "AI video generation with artistic styles", Category: CategoryVideo, Pricing: "Free tier + $10/month", Website: "https://kaiber.ai", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "artistic styles", "animation"}},
		{ID: "deforum", Name: "Deforum", Description: "Open-source AI video generation", Category: CategoryVideo, Pricing: "Free open-source", Website: "https://github.com/deforum/stable-diffusion", RequiresAPIKey: false, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "animation", "open-source"}},
		{ID: "zeroscope", Name: "Zeroscope", Description: "AI video generation with text prompts", Category: CategoryVideo, Pricing: "Free tier + paid", Website: "https://zeroscope.pics", RequiresAPIKey: true, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "text-to-video", "animation"}},
		{ID: "modelscope", Name: "ModelScope", Description: "Open-source video generation models", Category: CategoryVideo, Pricing: "Free open-source", Website: "https://modelscope.cn", RequiresAPIKey: false, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "text-to-video", "open-source"}},
		{ID: "videocrafter", Name: "VideoCrafter", Description: "Open-source text-to-video generation", Category: CategoryVideo, Pricing: "Free open-source", Website: "https://github.com/AILab-CVC/VideoCrafter", RequiresAPIKey: false, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "text-to-video", "open-source"}},
		{ID: "animatedrawings", Name: "Animated Drawings", Description: "Meta's free animation tool", Category: CategoryVideo, Pricing: "Free meta tool", Website: "https://animatedrawings.meta.com", RequiresAPIKey: false, IsFree: true, CostTier: CostTierFree, Capabilities: []string{"video generation", "animation", "drawing to video"}},
	}
}
