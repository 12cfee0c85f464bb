package sentiment

// Built-in lexicons. These cover the high-frequency evaluative vocabulary;
// domain lexicons loaded via AddLexicon take precedence wholesale.

var builtinEnglish = Lexicon{
	"good":        {Polarity: 0.7, Subjectivity: 0.6},
	"great":       {Polarity: 0.8, Subjectivity: 0.75},
	"excellent":   {Polarity: 1.0, Subjectivity: 1.0},
	"amazing":     {Polarity: 0.6, Subjectivity: 0.9},
	"wonderful":   {Polarity: 1.0, Subjectivity: 1.0},
	"love":        {Polarity: 0.5, Subjectivity: 0.6},
	"like":        {Polarity: 0.3, Subjectivity: 0.4},
	"happy":       {Polarity: 0.8, Subjectivity: 1.0},
	"nice":        {Polarity: 0.6, Subjectivity: 1.0},
	"best":        {Polarity: 1.0, Subjectivity: 0.3},
	"better":      {Polarity: 0.5, Subjectivity: 0.5},
	"interesting": {Polarity: 0.5, Subjectivity: 0.5},
	"useful":      {Polarity: 0.3, Subjectivity: 0.0},
	"clear":       {Polarity: 0.1, Subjectivity: 0.4},
	"bad":         {Polarity: -0.7, Subjectivity: 0.67},
	"terrible":    {Polarity: -1.0, Subjectivity: 1.0},
	"awful":       {Polarity: -1.0, Subjectivity: 1.0},
	"horrible":    {Polarity: -1.0, Subjectivity: 1.0},
	"hate":        {Polarity: -0.8, Subjectivity: 0.9},
	"sad":         {Polarity: -0.5, Subjectivity: 1.0},
	"poor":        {Polarity: -0.4, Subjectivity: 0.6},
	"worst":       {Polarity: -1.0, Subjectivity: 1.0},
	"worse":       {Polarity: -0.5, Subjectivity: 0.5},
	"boring":      {Polarity: -0.6, Subjectivity: 0.8},
	"difficult":   {Polarity: -0.3, Subjectivity: 0.5},
	"wrong":       {Polarity: -0.5, Subjectivity: 0.5},
	"broken":      {Polarity: -0.4, Subjectivity: 0.4},
	"slow":        {Polarity: -0.3, Subjectivity: 0.4},
	"fast":        {Polarity: 0.2, Subjectivity: 0.5},
	"easy":        {Polarity: 0.4, Subjectivity: 0.8},
}

var builtinDutch = Lexicon{
	"goed":            {Polarity: 0.7, Subjectivity: 0.6},
	"geweldig":        {Polarity: 0.9, Subjectivity: 0.9},
	"uitstekend":      {Polarity: 1.0, Subjectivity: 1.0},
	"prachtig":        {Polarity: 0.9, Subjectivity: 1.0},
	"leuk":            {Polarity: 0.6, Subjectivity: 0.9},
	"leuke":           {Polarity: 0.6, Subjectivity: 0.9},
	"mooi":            {Polarity: 0.7, Subjectivity: 0.9},
	"fijn":            {Polarity: 0.6, Subjectivity: 0.8},
	"blij":            {Polarity: 0.8, Subjectivity: 1.0},
	"interessant":     {Polarity: 0.5, Subjectivity: 0.5},
	"nuttig":          {Polarity: 0.3, Subjectivity: 0.0},
	"beste":           {Polarity: 1.0, Subjectivity: 0.3},
	"beter":           {Polarity: 0.5, Subjectivity: 0.5},
	"slecht":          {Polarity: -0.7, Subjectivity: 0.67},
	"verschrikkelijk": {Polarity: -1.0, Subjectivity: 1.0},
	"vreselijk":       {Polarity: -1.0, Subjectivity: 1.0},
	"saai":            {Polarity: -0.6, Subjectivity: 0.8},
	"moeilijk":        {Polarity: -0.3, Subjectivity: 0.5},
	"verkeerd":        {Polarity: -0.5, Subjectivity: 0.5},
	"kapot":           {Polarity: -0.4, Subjectivity: 0.4},
	"traag":           {Polarity: -0.3, Subjectivity: 0.4},
	"snel":            {Polarity: 0.2, Subjectivity: 0.5},
	"makkelijk":       {Polarity: 0.4, Subjectivity: 0.8},
}
