package catalog

// BoardSize is the side length of the square board star coordinates live on.
const BoardSize = 500

var Animals = []Animal{
	{ID: "lion", Name: "Lion", Image: "https://images.unsplash.com/photo-1546182990-dffeaf781f28?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "ROAR!", SoundURL: "https://cdn.pixabay.com/audio/2022/04/08/audio_b655a11eda.mp3"},
	{ID: "cow", Name: "Cow", Image: "https://images.unsplash.com/photo-1570042225732-ab021f9da372?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "MOO!", SoundURL: "https://cdn.pixabay.com/audio/2022/03/23/audio_45070678d9.mp3"},
	{ID: "dog", Name: "Dog", Image: "https://images.unsplash.com/photo-1537151625747-768eb6cf92b2?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "WOOF!", SoundURL: "https://cdn.pixabay.com/audio/2022/03/15/audio_731a547b7a.mp3"},
	{ID: "cat", Name: "Cat", Image: "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "MEOW!", SoundURL: "https://cdn.pixabay.com/audio/2022/09/20/audio_2426998b4c.mp3"},
	{ID: "duck", Name: "Duck", Image: "https://images.unsplash.com/photo-1563209219-286950e1859c?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "QUACK!", SoundURL: "https://cdn.pixabay.com/audio/2022/10/26/audio_f5e0284474.mp3"},
	{ID: "sheep", Name: "Sheep", Image: "https://images.unsplash.com/photo-1550030085-00ce52a75242?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "BAA!", SoundURL: "https://cdn.pixabay.com/audio/2021/11/24/audio_9242a781be.mp3"},
	{ID: "pig", Name: "Pig", Image: "https://images.unsplash.com/photo-1550825309-97427515a8a1?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "OINK!", SoundURL: "https://cdn.pixabay.com/audio/2022/03/24/audio_338a0b3c69.mp3"},
	{ID: "horse", Name: "Horse", Image: "https://images.unsplash.com/photo-1553284965-83fd3e82fa5a?q=80&w=500&h=500&fit=crop&crop=entropy", SoundDescription: "NEIGH!", SoundURL: "https://cdn.pixabay.com/audio/2022/04/18/audio_511c1da483.mp3"},
}

var Colors = []Color{
	{Name: "Red", Hex: "#e74c3c"},
	{Name: "Blue", Hex: "#3498db"},
	{Name: "Green", Hex: "#2ecc71"},
	{Name: "Yellow", Hex: "#f1c40f"},
	{Name: "Purple", Hex: "#9b59b6"},
	{Name: "Orange", Hex: "#e67e22"},
	{Name: "Pink", Hex: "#fd79a8"},
	{Name: "Teal", Hex: "#1abc9c"},
}

var Emotions = []Emotion{
	{ID: "happy", Name: "Happy", Emoji: "😊"},
	{ID: "sad", Name: "Sad", Emoji: "😢"},
	{ID: "angry", Name: "Angry", Emoji: "😠"},
	{ID: "surprised", Name: "Surprised", Emoji: "😮"},
	{ID: "silly", Name: "Silly", Emoji: "🤪"},
	{ID: "calm", Name: "Calm", Emoji: "😌"},
	{ID: "excited", Name: "Excited", Emoji: "🥳"},
	{ID: "tired", Name: "Tired", Emoji: "😴"},
}

var ShapeKinds = []ShapeKind{ShapeSquare, ShapeCircle, ShapeTriangle, ShapeStar}

var ShapePalette = []string{"#3498db", "#e74c3c", "#2ecc71", "#f1c40f", "#9b59b6", "#1abc9c"}

var Constellations = []Constellation{
	{
		ID:   "square",
		Name: "Square",
		Stars: []Star{
			{X: 100, Y: 100}, {X: 400, Y: 100}, {X: 400, Y: 400}, {X: 100, Y: 400}, {X: 100, Y: 100},
		},
	},
	{
		ID:   "triangle",
		Name: "Triangle",
		Stars: []Star{
			{X: 250, Y: 100}, {X: 400, Y: 400}, {X: 100, Y: 400}, {X: 250, Y: 100},
		},
	},
	{
		ID:   "house",
		Name: "House",
		Stars: []Star{
			{X: 100, Y: 450},
			{X: 400, Y: 450},
			{X: 400, Y: 250},
			{X: 250, Y: 100},
			{X: 100, Y: 250},
			{X: 100, Y: 450},
		},
	},
}
