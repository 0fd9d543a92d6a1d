package services

// Canned pools the assistant composes reminders from. One motivational entry
// is always used; a task-specific tip is added when pending tasks exist.
var motivationalMessages = []string{
	"Good morning! 🌅 Ready to conquer today's challenges? Your tasks are waiting for your brilliance!",
	"Rise and shine! ✨ Today is a new opportunity to make progress on your goals. Let's get started!",
	"Morning motivation coming your way! 💪 Remember, every expert was once a beginner. Keep pushing forward!",
	"Hello there! 🎯 Your future self will thank you for the work you do today. Let's make it count!",
	"Good morning, achiever! 🚀 Small consistent actions lead to big results. What will you accomplish today?",
	"Wake up and be awesome! ⭐ Your tasks are stepping stones to your dreams. Time to take the next step!",
	"Morning reminder: You've got this! 💫 Focus on progress, not perfection. Let's tackle those tasks!",
	"Sunrise, new day, new possibilities! 🌟 Your dedication yesterday sets the stage for today's success.",
	"Good morning, goal-getter! 🎪 Each completed task is a victory. Ready to collect some wins today?",
	"Hey there, champion! 🏆 Consistency is your superpower. Time to activate it with today's tasks!",
}

var taskSpecificMessages = []string{
	"I noticed you have some important tasks lined up! 📋 Breaking them into smaller steps makes everything manageable.",
	"Your task list is looking productive! 💼 Remember to take breaks between focused work sessions.",
	"Seeing some great goals on your board! 🎯 Prioritize the high-impact tasks for maximum momentum.",
	"Those pending tasks are opportunities in disguise! ✨ Each one completed brings you closer to your vision.",
	"Your learning journey is inspiring! 📚 Consistent practice with these tasks will compound over time.",
	"I love seeing your commitment to growth! 🌱 Today's efforts are tomorrow's achievements.",
	"Ready to turn those pending tasks into completed victories? 💪 You have everything you need to succeed!",
	"Your task board shows real intention and planning! 🎨 Execution is where the magic happens.",
	"Time to transform those ideas into action! ⚡ Start with the task that excites you most.",
	"Every task completed is a skill gained! 🎓 Learning through doing is the most powerful way to grow.",
}
